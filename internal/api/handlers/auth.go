package handlers

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/web"
	"net/http"
)

// LoginFailure is shown after a wrong password.
const LoginFailure = "Mot de passe incorrect !"

type SessionIssuer interface {
	Issue(w http.ResponseWriter, s *domain.Session)
	Revoke(w http.ResponseWriter, s *domain.Session)
}

// AuthHandler implements the shared-password gate.
type AuthHandler struct {
	Password string
	Sessions SessionIssuer
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	if s.Authenticated {
		http.Redirect(w, r, "/stats", http.StatusFound)
		return
	}
	render(w, r, http.StatusOK, web.PageLogin, web.LoginPage{Page: web.Page{Title: "Connexion"}})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, web.PageLogin, web.LoginPage{Page: web.Page{Title: "Connexion"}, Error: LoginFailure})
		return
	}

	if !s.Authenticate(r.PostFormValue("password"), h.Password) {
		requestLog(r).Warn("login rejected")
		render(w, r, http.StatusUnauthorized, web.PageLogin, web.LoginPage{Page: web.Page{Title: "Connexion"}, Error: LoginFailure})
		return
	}

	h.Sessions.Issue(w, s)
	requestLog(r).Info("login accepted")
	http.Redirect(w, r, "/stats", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	s.Logout()
	h.Sessions.Revoke(w, s)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
