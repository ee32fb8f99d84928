// Package site writes the generated catalog website: the site layout
// directories, info.json, the script-embeddable search index, per-bucket
// error reports, extracted icons, bundle copies, and per-activity HTML
// detail pages.
//
// The Writer tracks every file it writes so the run report and checksum
// generation can account for them.
package site
