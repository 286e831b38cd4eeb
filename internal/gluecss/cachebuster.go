package gluecss

// ApplyCacheBuster appends the sheet hash as a query string
func ApplyCacheBuster(path, hash string) string {
	return path + "?" + hash
}
