package obs

import "net/http"

// StatusWriter captures the final HTTP status code and number of bytes written.
type StatusWriter struct {
	http.ResponseWriter
	status int
	Bytes  int
}

func (w *StatusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *StatusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.Bytes += n
	return n, err
}

// Status returns the written status, 200 when nothing was written.
func (w *StatusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
