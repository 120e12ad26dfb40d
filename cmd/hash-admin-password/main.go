package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/campusconnect/backend/internal/config"
)

// Prints a bcrypt hash for ADMIN_PASSWORD_HASH.
func main() {
	cfg := config.Load()

	fmt.Println("=== Hash Admin Password ===")

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Newline after password input
	if err != nil {
		fmt.Println("Error reading password")
		os.Exit(1)
	}
	if len(bytePassword) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		os.Exit(1)
	}

	fmt.Print("Confirm Password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil || string(confirm) != string(bytePassword) {
		fmt.Println("Error: Passwords do not match")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword(bytePassword, cfg.BcryptCost)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
