package models

type Section struct {
	ID              int64             `json:"id" validate:"required"`
	Title           string            `json:"title"`
	Number          int               `json:"number"`
	Questions       []Question        `json:"questions" validate:"required,min=1,dive"`
	SectionProgress []SectionProgress `json:"sectionProgress"`
}

type Question struct {
	ID      int64    `json:"id" validate:"required"`
	Text    string   `json:"text"`
	Options []Option `json:"options" validate:"required,min=2"`
}

type Option struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type SectionProgress struct {
	SectionNumber int  `json:"sectionNumber"`
	Completed     bool `json:"completed"`
}
