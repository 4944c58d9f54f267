package models

// Course represents a university course that groups and study material hang off
type Course struct {
	CourseID   uint   `json:"course_id" gorm:"primaryKey"`
	CourseCode string `json:"course_code" gorm:"uniqueIndex;not null;size:20" validate:"required,max=20"`
	CourseName string `json:"course_name" gorm:"not null;size:200" validate:"required,max=200"`
	CollegeID  *uint  `json:"college_id,omitempty" gorm:"index"`
}

// TableName returns the table name for Course
func (Course) TableName() string {
	return "courses"
}
