package models

// College is a school a user or course belongs to
type College struct {
	CollegeID   uint   `json:"college_id" gorm:"primaryKey"`
	CollegeName string `json:"college_name" gorm:"uniqueIndex;not null;size:200"`
}

// TableName returns the table name for College
func (College) TableName() string {
	return "colleges"
}

// Major is a field of study a user can declare
type Major struct {
	MajorID   uint   `json:"major_id" gorm:"primaryKey"`
	MajorName string `json:"major_name" gorm:"uniqueIndex;not null;size:200"`
}

// TableName returns the table name for Major
func (Major) TableName() string {
	return "majors"
}
