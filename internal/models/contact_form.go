package models

// ContactForm is a submission of the public contact form.
type ContactForm struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Fullname   string `json:"fullname" gorm:"type:varchar(100)"`
	Email      string `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Gender     string `json:"gender" gorm:"type:varchar(10)"`
	Newsletter bool   `json:"newsletter"`
	Comment    string `json:"comment" gorm:"type:varchar(500)"`
}

// TableName keeps the table name stable regardless of gorm's naming strategy.
func (ContactForm) TableName() string {
	return "contact_forms"
}

// ContactFormRequest is bound from the submitted form fields.
// Newsletter and Comment are optional and default to false and "".
type ContactFormRequest struct {
	Fullname   string `form:"fullname" json:"fullname" validate:"required,max=100"`
	Email      string `form:"email" json:"email" validate:"required,max=100"`
	Gender     string `form:"gender" json:"gender" validate:"required,max=10"`
	Newsletter bool   `form:"newsletter" json:"newsletter"`
	Comment    string `form:"comment" json:"comment" validate:"max=500"`
}

// NewContactForm converts a validated request into a row.
func NewContactForm(req ContactFormRequest) *ContactForm {
	return &ContactForm{
		Fullname:   req.Fullname,
		Email:      req.Email,
		Gender:     req.Gender,
		Newsletter: req.Newsletter,
		Comment:    req.Comment,
	}
}
