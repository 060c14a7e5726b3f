package email

// PreviewData holds sample variables for every template, used to render
// previews and in tests.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Siti",
	},
}
