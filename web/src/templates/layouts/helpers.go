package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, siteName string) string {
	switch {
	case title != "" && siteName != "":
		return title + " - " + siteName
	case title != "":
		return title
	case siteName != "":
		return siteName
	default:
		return "Portfolio"
	}
}
