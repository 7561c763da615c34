package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for receipt uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// MIMETypes maps normalized extensions to the MIME type sent to the
// document-understanding backend.
var MIMETypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMETypeForExt returns the MIME type for a file extension, defaulting to
// image/jpeg for anything unrecognized (scanned receipts are mostly photos).
func MIMETypeForExt(ext string) string {
	if mt, ok := MIMETypes[NormalizeExt(ext)]; ok {
		return mt
	}
	return "image/jpeg"
}
