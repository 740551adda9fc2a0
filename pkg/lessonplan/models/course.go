package models

// CourseMetadata holds the scalar facts printed in the lesson-plan header.
type CourseMetadata struct {
	AcademyName string `json:"academy_name"`
	Subjects    string `json:"subjects"`
	Instructor  string `json:"instructor"`
	ClassYear   int    `json:"class_year"`
	ClassMonth  int    `json:"class_month"`
}

func (c CourseMetadata) normalized() CourseMetadata {
	c.AcademyName = NormalizeText(c.AcademyName)
	c.Subjects = NormalizeText(c.Subjects)
	c.Instructor = NormalizeText(c.Instructor)
	return c
}

// LessonPlanRow is one dated lesson entry.
type LessonPlanRow struct {
	Date   Date   `json:"date"`
	Detail string `json:"detail"`
	Note   string `json:"note"`
}

func (r LessonPlanRow) normalized() LessonPlanRow {
	r.Detail = NormalizeText(r.Detail)
	r.Note = NormalizeText(r.Note)
	return r
}
