package handler

import (
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/service"
)

type identityView struct {
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	IsStudent   bool   `json:"is_student"`
	IsAdmin     bool   `json:"is_admin"`
}

func newIdentityView(id service.Identity) identityView {
	return identityView{
		StudentID:   id.StudentID,
		StudentName: id.StudentName,
		IsStudent:   id.IsStudent(),
		IsAdmin:     id.IsAdmin,
	}
}

type searchView struct {
	Identity identityView       `json:"identity"`
	Filter   model.CourseFilter `json:"filter"`
	Courses  []model.Course     `json:"courses"`
}

type myCoursesView struct {
	Identity  identityView          `json:"identity"`
	Enrolled  []model.Course        `json:"enrolled"`
	Available []model.Course        `json:"available"`
	Billing   *model.BillingSummary `json:"billing"`
}

type billingView struct {
	Identity identityView          `json:"identity"`
	Enrolled []model.Course        `json:"enrolled"`
	Billing  *model.BillingSummary `json:"billing"`
}
