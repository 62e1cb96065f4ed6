//nolint:revive // types is a standard Go package name pattern
package types

// UserDataPatch replaces only the non-nil fields of UserData
type UserDataPatch struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	Github   *string `json:"github,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
}

// Apply writes the patch onto u
func (p UserDataPatch) Apply(u *UserData) {
	setString(&u.Name, p.Name)
	setString(&u.Title, p.Title)
	setString(&u.Bio, p.Bio)
	setString(&u.Email, p.Email)
	setString(&u.Phone, p.Phone)
	setString(&u.Location, p.Location)
	setString(&u.Website, p.Website)
	setString(&u.Github, p.Github)
	setString(&u.Linkedin, p.Linkedin)
}

// ProjectPatch replaces only the non-nil fields of a ProjectData
type ProjectPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Link         *string   `json:"link,omitempty"`
	Github       *string   `json:"github,omitempty"`
	Image        *string   `json:"image,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
}

// Apply writes the patch onto p
func (p ProjectPatch) Apply(dst *ProjectData) {
	setString(&dst.Title, p.Title)
	setString(&dst.Description, p.Description)
	if p.Technologies != nil {
		dst.Technologies = append([]string(nil), (*p.Technologies)...)
	}
	setString(&dst.Link, p.Link)
	setString(&dst.Github, p.Github)
	setString(&dst.Image, p.Image)
	setString(&dst.StartDate, p.StartDate)
	setString(&dst.EndDate, p.EndDate)
}

// ExperiencePatch replaces only the non-nil fields of an ExperienceData
type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// Apply writes the patch onto dst
func (p ExperiencePatch) Apply(dst *ExperienceData) {
	setString(&dst.Company, p.Company)
	setString(&dst.Position, p.Position)
	setString(&dst.Description, p.Description)
	setString(&dst.StartDate, p.StartDate)
	setString(&dst.EndDate, p.EndDate)
	setString(&dst.Location, p.Location)
}

// DesignOptionsPatch replaces only the non-nil fields of DesignOptions
type DesignOptionsPatch struct {
	PrimaryColor   *string       `json:"primaryColor,omitempty"`
	SecondaryColor *string       `json:"secondaryColor,omitempty"`
	FontFamily     *string       `json:"fontFamily,omitempty"`
	Layout         *Layout       `json:"layout,omitempty" validate:"omitempty,oneof=single-column two-column grid"`
	Animations     *bool         `json:"animations,omitempty"`
	DarkMode       *bool         `json:"darkMode,omitempty"`
	BorderRadius   *BorderRadius `json:"borderRadius,omitempty" validate:"omitempty,oneof=none small medium large"`
}

// Apply writes the patch onto d
func (p DesignOptionsPatch) Apply(d *DesignOptions) {
	setString(&d.PrimaryColor, p.PrimaryColor)
	setString(&d.SecondaryColor, p.SecondaryColor)
	setString(&d.FontFamily, p.FontFamily)
	if p.Layout != nil {
		d.Layout = *p.Layout
	}
	if p.Animations != nil {
		d.Animations = *p.Animations
	}
	if p.DarkMode != nil {
		d.DarkMode = *p.DarkMode
	}
	if p.BorderRadius != nil {
		d.BorderRadius = *p.BorderRadius
	}
}

// Validate checks the enum fields of the patch
func (p *DesignOptionsPatch) Validate() error {
	return validate.Struct(p)
}

// Validate checks the patch's email format
func (p *UserDataPatch) Validate() error {
	return validate.Struct(p)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
