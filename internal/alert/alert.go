// Package alert reports build failures in a blocking native message box.
package alert

import "github.com/sqweek/dialog"

// DefaultTitle is used when a Reporter has no title.
const DefaultTitle = "Shader Error"

// Reporter shows each failure in an error message box and waits for the
// user to dismiss it.
type Reporter struct {
	Title string
}

// Report shows err.
func (r Reporter) Report(err error) {
	if err == nil {
		return
	}
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}
	dialog.Message("%s", err.Error()).Title(title).Error()
}
