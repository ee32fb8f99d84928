/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package site

import (
	"bytes"
	"html/template"
	"net/url"
	"path/filepath"

	apperrors "github.com/sugarlabs/aslo-catalog/pkg/errors"
	"github.com/sugarlabs/aslo-catalog/pkg/index"
)

// pageHTML is the per-activity detail page. Relative asset paths assume the
// page lives one level below the site root (app/<name>.html).
const pageHTML = `<!DOCTYPE html>
<html>
<head>
<title>{{.Name}}</title>
<meta charset="utf-8"/>
<link rel="stylesheet" type="text/css" href="../css/main.css"/>
</head>
<body>
<h1>{{.Name}}</h1>
<p><img src="{{.IconHref}}" alt="{{.Name}} icon"></p>
<div id="summary"><h2>Summary</h2>
<p>{{.Summary}}</p>
</div>
<div id="description"><h2>Description</h2>
<p>{{.Description}}</p>
</div>
<div id="tags"><h2>Tags</h2>
<ul>
{{- range .Tags}}
<li>{{.}}</li>
{{- end}}
</ul>
</div>
<a href="{{.BundleHref}}"><h2>Download</h2></a>
</body>
</html>
`

var pageTemplate = template.Must(template.New("activity-page").Parse(pageHTML))

// activityPage is the template data for one catalog detail page.
type activityPage struct {
	Name        string
	Summary     string
	Description string
	Tags        []string
	IconHref    string
	BundleHref  string
}

// WriteActivityPage renders the catalog detail page for one index entry at
// app/<name>.html, linking the icon and bundle download paths. Entries with
// an empty name have no usable page and must be filtered by the caller.
func (w *Writer) WriteActivityPage(entry index.Entry) error {
	escaped := url.PathEscape(entry.Name)

	page := activityPage{
		Name:        entry.Name,
		Summary:     entry.Summary,
		Description: entry.Description,
		Tags:        entry.Tags,
		IconHref:    "../" + IconsDir + "/" + escaped + ".svg",
		BundleHref:  "../" + BundlesDir + "/" + escaped + ".xo",
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to render activity page", err,
			map[string]any{"name": entry.Name})
	}

	return w.writeFile(filepath.Join(AppDir, entry.Name+".html"), buf.Bytes())
}
