package template

// Meta describes a render template a resume can be attached to
type Meta struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DefaultName is the template assigned when none is requested
const DefaultName = "template1"

var catalog = []Meta{
	{Name: "template1", Label: "Modern Professional", Description: "Clean & ATS Friendly"},
	{Name: "template2", Label: "Corporate Blue", Description: "Formal & Recruiter Ready"},
	{Name: "template3", Label: "Creative Minimal", Description: "Stylish & Modern"},
	{Name: "template4", Label: "Executive Black", Description: "Leadership & Premium"},
	{Name: "template5", Label: "Fresh Graduate", Description: "Simple & Entry Level"},
	{Name: "template6", Label: "Purple Pro", Description: "Modern & Premium"},
	{Name: "template7", Label: "Tech Focused", Description: "Developer Friendly"},
	{Name: "template8", Label: "Classic Resume", Description: "Traditional & Safe"},
	{Name: "template9", Label: "Elegant Grey", Description: "Balanced & Professional"},
	{Name: "template10", Label: "Startup Ready", Description: "Bold & Modern"},
	{Name: "template_adani", Label: "Adani Corporate", Description: "Clean, conservative corporate layout inspired by large Indian conglomerates"},
	{Name: "template_tcs", Label: "TCS Fresher Format", Description: "Single-column academic style"},
	{Name: "template_reliance", Label: "Reliance / Core", Description: "Two-column, experience-focused"},
	{Name: "template_it_modern", Label: "IT Modern One-Page", Description: "ATS-friendly product/IT style"},
}

var byName = func() map[string]Meta {
	m := make(map[string]Meta, len(catalog))
	for _, t := range catalog {
		m[t.Name] = t
	}
	return m
}()

// Catalog returns every available template
func Catalog() []Meta {
	out := make([]Meta, len(catalog))
	copy(out, catalog)
	return out
}

// Exists reports whether a template name is known
func Exists(name string) bool {
	_, ok := byName[name]
	return ok
}

// Get looks up a template by name
func Get(name string) (Meta, bool) {
	t, ok := byName[name]
	return t, ok
}
