package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
)

// templates holds every page of the site. The bio is free text typed by
// users; html/template's contextual escaping is what keeps it inert.
var templates = template.Must(template.New("biosite").Parse(`
{{define "head"}}<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<title>{{.}}</title>
<link rel="stylesheet" href="/styles.css">
</head>{{end}}

{{define "home"}}{{template "head" "Site de Bios"}}
<body>
<h1>Site de Bios</h1>
{{if .Username}}<p>Bonjour {{.Username}} |
<a href="/logout">Déconnexion</a> |
<a href="/dashboard">Gérer ma bio</a> |
<a href="/customise">Personnaliser</a></p>
{{else}}<p><a href="/login">Se connecter</a> | <a href="/register">Créer un compte</a></p>
{{end}}</body></html>{{end}}

{{define "login"}}{{template "head" "Connexion"}}
<body>
<h1>Connexion</h1>
<form method="POST" action="/login">
<input name="username" placeholder="Nom d'utilisateur"><br>
<input type="password" name="password" placeholder="Mot de passe"><br>
<button type="submit">Se connecter</button>
</form>
<p><a href="/">Accueil</a></p>
</body></html>{{end}}

{{define "register"}}{{template "head" "Inscription"}}
<body>
<h1>Inscription</h1>
<form method="POST" action="/register">
<input name="username" placeholder="Nom d'utilisateur"><br>
<input type="password" name="password" placeholder="Mot de passe"><br>
<button type="submit">Créer un compte</button>
</form>
<p><a href="/">Accueil</a></p>
</body></html>{{end}}

{{define "dashboard"}}{{template "head" "Mon compte"}}
<body>
<h1>Mon Compte</h1>
<p><a href="/">Accueil</a> | <a href="/customise">Personnaliser</a> | <a href="/logout">Déconnexion</a></p>
<form method="POST" action="/update">
<textarea name="bio" rows="5" cols="40">{{.Bio}}</textarea><br>
<button type="submit">Mettre à jour</button>
</form>
</body></html>{{end}}

{{define "customise"}}{{template "head" "Personnalisation"}}
<body>
<h1>Personnalisation</h1>
<p><a href="/">Accueil</a> | <a href="/dashboard">Gérer ma bio</a></p>
<form method="POST" action="/customise">
<label>Fond <input type="color" name="bgColor" value="{{.Style.Background}}"></label><br>
<label>Texte <input type="color" name="textColor" value="{{.Style.Text}}"></label><br>
<button type="submit">Enregistrer</button>
</form>
</body></html>{{end}}

{{define "profile"}}{{template "head" .Username}}
<body style="background-color: {{.Style.Background}}; color: {{.Style.Text}}">
<h1>{{.Username}}</h1>
<p>{{.Bio}}</p>
<p><a href="/">Accueil</a></p>
</body></html>{{end}}
`))

// render buffers template execution so a failure mid-page can still become
// a clean 500 instead of a half-written response.
func render(w http.ResponseWriter, logger *slog.Logger, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Erreur interne", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
