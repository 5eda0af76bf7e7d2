package pages

// WorkCard is the View Model for one tile in the home or gallery grid.
type WorkCard struct {
	Filename string
	Title    string
	ImageURL string
	Caption  string
}

// WorkDetail is the View Model for the work detail modal.
type WorkDetail struct {
	Title       string
	ImageURL    string
	Category    string
	Date        string
	Description string
	Price       string
}

// HomeData feeds the landing page.
type HomeData struct {
	Featured     []WorkCard
	EmptyLabel   string
	HideFeatured bool
}

// FilterButton is one entry of the gallery filter bar.
type FilterButton struct {
	Value  string
	Label  string
	Active bool
}

// GalleryData feeds the gallery page and its grid fragment.
type GalleryData struct {
	Filters    []FilterButton
	Works      []WorkCard
	EmptyLabel string
}

// AboutData feeds the about page.
type AboutData struct {
	Name            string
	Title           string
	AvatarURL       string
	DescriptionHTML string
	WorkCount       int
}

// SocialButton is a rendered social link. Exactly one of URL or QRCodeURL is set.
type SocialButton struct {
	Platform  string
	Label     string
	URL       string
	QRCodeURL string
}

// QRCodeData feeds the QR code modal.
type QRCodeData struct {
	Title    string
	ImageURL string
	Hint     string
}

// ContactForm carries submitted values back into the form after a failure.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactData feeds the contact page.
type ContactData struct {
	Email        string
	EmailHref    string
	Phone        string
	PhoneHref    string
	Website      string
	WebsiteHref  string
	Social       []SocialButton
	MailEnabled  bool
	MailDisabled string
	Form         ContactForm
	SendingLabel string
}
