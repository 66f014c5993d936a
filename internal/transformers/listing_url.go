package transformers

import "strings"

type listingURLTransformer struct{}

func NewListingURLTransformer() ListingURLTransformer {
	return &listingURLTransformer{}
}

// ListingPath keeps only the path of a listing URL. Scheme, authority, query
// and fragment are dropped; the path itself is returned exactly as written,
// without decoding or re-escaping. A URL without a path yields "".
func (t *listingURLTransformer) ListingPath(rawURL string) string {
	s := rawURL
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}

	if i := strings.IndexByte(s, ':'); i > 0 && isScheme(s[:i]) {
		s = s[i+1:]
	}
	if strings.HasPrefix(s, "//") {
		authority := s[2:]
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			return authority[i:]
		}
		return ""
	}
	return s
}

// isScheme reports whether s is a URL scheme: a letter followed by letters,
// digits, '+', '-' or '.'.
func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
