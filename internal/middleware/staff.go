package middleware

import "net/http"

// StaffOnly gates staff endpoints behind the UI's role toggle. The app
// trusts the header; real authentication is out of scope.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Staff") != "true" {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
