package service

import "net/url"

// signatureParams are query parameters whose presence marks a URL as
// structurally signed. Only such URLs may be trusted straight off a
// document record.
var signatureParams = []string{
	"X-Amz-Signature",
	"X-Goog-Signature",
	"Signature",
	"token",
}

// IsSignedURL reports whether raw is an absolute URL bearing a recognizable
// signature query parameter.
func IsSignedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	q := u.Query()
	for _, p := range signatureParams {
		if q.Get(p) != "" {
			return true
		}
	}
	return false
}
