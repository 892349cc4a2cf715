package web

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}} · Suivi de la collecte</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,-apple-system,'Segoe UI',sans-serif;background:#f6f8fa;color:#1f2328;font-size:14px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#ffffff;border-bottom:1px solid #d0d7de;padding:8px 16px;display:flex;gap:12px;align-items:center;flex-wrap:wrap}
nav .brand{font-weight:700;font-size:15px;margin-right:8px}
nav a{color:#57606a;padding:4px 10px;border-radius:6px}
nav a:hover{background:#eaeef2;text-decoration:none}
nav a.active{background:#0969da;color:#fff}
nav .actions{margin-left:auto;display:flex;gap:8px;align-items:center}
nav form{display:inline}
main{padding:16px;max-width:1200px;margin:0 auto}
h1{font-size:18px;font-weight:700;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#57606a;text-transform:uppercase;letter-spacing:.05em;margin:16px 0 8px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:12px 16px;min-width:160px}
.card .val{font-size:24px;font-weight:700}
.card .lbl{font-size:12px;color:#57606a;margin-top:2px}
.section{background:#fff;border:1px solid #d0d7de;border-radius:6px;margin-bottom:16px;overflow:hidden}
.section-hdr{padding:8px 12px;border-bottom:1px solid #d0d7de;font-size:12px;font-weight:600;color:#57606a;background:#f6f8fa}
table{width:100%;border-collapse:collapse;font-size:13px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;color:#57606a;font-weight:600;font-size:12px}
td{padding:5px 10px;border-bottom:1px solid #eaeef2}
.num{text-align:right;font-variant-numeric:tabular-nums}
.bar-wrap{background:#eaeef2;border-radius:3px;height:10px;width:100%;min-width:120px}
.bar{background:#0969da;border-radius:3px;height:10px;display:block}
.msg{padding:8px 12px;border-radius:6px;margin-bottom:12px;border:1px solid}
.msg.err{background:#ffebe9;border-color:#ff8182;color:#82071e}
.msg.warn{background:#fff8c5;border-color:#d4a72c;color:#633c01}
.msg.info{background:#ddf4ff;border-color:#54aeff;color:#0a3069}
.dim{color:#57606a}
.filters{display:flex;gap:8px;flex-wrap:wrap;align-items:center;margin-bottom:12px;background:#fff;padding:8px 12px;border-radius:6px;border:1px solid #d0d7de}
.filters label{font-size:12px;color:#57606a}
.filters select,.filters input{border:1px solid #d0d7de;border-radius:4px;padding:3px 6px;font-size:13px;font-family:inherit}
button{background:#0969da;border:none;color:#fff;padding:5px 12px;border-radius:6px;cursor:pointer;font-size:13px}
button.secondary{background:#eaeef2;color:#1f2328;border:1px solid #d0d7de}
#map{height:520px;border-radius:6px;border:1px solid #d0d7de}
.login{max-width:360px;margin:64px auto;background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:24px}
.login input{width:100%;padding:6px 8px;margin:8px 0 12px;border:1px solid #d0d7de;border-radius:4px}
textarea{width:100%;min-height:90px;padding:8px;border:1px solid #d0d7de;border-radius:6px;font-family:inherit;font-size:14px;margin-bottom:8px}
.reply{white-space:pre-wrap;padding:12px}
</style>
</head>
<body>
<nav>
  <span class="brand">📊 Suivi de la collecte RGE</span>
  {{- if .Authenticated}}
  <a href="/stats" {{if eq .Active "stats"}}class="active"{{end}}>Statistiques</a>
  <a href="/map" {{if eq .Active "map"}}class="active"{{end}}>Carte</a>
  <a href="/agents" {{if eq .Active "agents"}}class="active"{{end}}>Suivi des agents</a>
  <a href="/chat" {{if eq .Active "chat"}}class="active"{{end}}>Chatbot IA</a>
  <div class="actions">
    {{if not .LoadedAt.IsZero}}<span class="dim">Données du {{fmtTime .LoadedAt}}</span>{{end}}
    <form method="POST" action="/refresh"><input type="hidden" name="next" value="/{{.Active}}"><button class="secondary" type="submit">Actualiser</button></form>
    <form method="POST" action="/logout"><button class="secondary" type="submit">Déconnexion</button></form>
  </div>
  {{- end}}
</nav>
<main>
{{if .LoadError}}<div class="msg err">{{.LoadError}}</div>{{end}}
{{if .Notice}}<div class="msg warn">{{.Notice}}</div>{{end}}
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

const tmplLogin = `
{{define "content"}}
<div class="login">
  <h1>🔒 Accès protégé</h1>
  {{if .Error}}<div class="msg err">{{.Error}}</div>{{end}}
  <form method="POST" action="/login">
    <label for="password">Entrez le mot de passe :</label>
    <input id="password" name="password" type="password" autofocus>
    <button type="submit">Se connecter</button>
  </form>
</div>
{{end}}
`

const tmplStats = `
{{define "content"}}
<h1>Statistiques globales</h1>
<div class="cards">
  <div class="card"><div class="val">{{.Stats.Zones}}</div><div class="lbl">Zones de recensement</div></div>
  <div class="card"><div class="val">{{.Stats.Ilots}}</div><div class="lbl">Îlots</div></div>
  <div class="card"><div class="val">{{.Stats.Total}}</div><div class="lbl">Enregistrements</div></div>
</div>
<div class="section">
  <div class="section-hdr">Évolution des collectes par date de début</div>
  {{if .Histogram}}
  <table>
    <tr><th>Date</th><th></th><th class="num">Collectes</th></tr>
    {{range .Histogram}}
    <tr>
      <td>{{fmtDate .Date}}</td>
      <td style="width:70%"><span class="bar-wrap"><span class="bar" style="width:{{barWidth .Count $.MaxCount}}%"></span></span></td>
      <td class="num">{{.Count}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p class="dim" style="padding:12px">Aucune date de début disponible.</p>
  {{end}}
</div>
{{end}}
`

const tmplMap = `
{{define "content"}}
<h1>Carte des collectes</h1>
<form class="filters" method="GET" action="/map">
  <label for="date1">Date début</label>
  <input id="date1" name="date1" type="date" value="{{.Filter.Date1}}">
  <label for="date2">Date fin</label>
  <input id="date2" name="date2" type="date" value="{{.Filter.Date2}}">
  <label for="agent">Agent</label>
  <select id="agent" name="agent">
    <option value="Tous" {{if eq .Filter.Agent "Tous"}}selected{{end}}>Tous</option>
    {{range .AgentNames}}<option value="{{.}}" {{if eq . $.Filter.Agent}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <button type="submit">Filtrer</button>
</form>
{{if .Points}}
<p class="dim" style="margin-bottom:8px">{{len .Points}} point(s) affiché(s)</p>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<div id="map"></div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script>
var points = {{.Points}};
var map = L.map('map');
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {attribution: '&copy; OpenStreetMap'}).addTo(map);
var bounds = [];
points.forEach(function (p) {
  L.circleMarker([p.lat, p.lon], {radius: 5}).addTo(map);
  bounds.push([p.lat, p.lon]);
});
map.fitBounds(bounds, {padding: [20, 20], maxZoom: 15});
</script>
{{else}}
<div class="msg warn">Aucune donnée géographique disponible pour les filtres sélectionnés.</div>
{{end}}
{{end}}
`

const tmplAgents = `
{{define "content"}}
<h1>Suivi des agents</h1>
<form class="filters" method="GET" action="/agents">
  <label for="date1">Date début</label>
  <input id="date1" name="date1" type="date" value="{{.Filter.Date1}}">
  <label for="date2">Date fin</label>
  <input id="date2" name="date2" type="date" value="{{.Filter.Date2}}">
  <label for="seuil">Seuil maximal d'enregistrements</label>
  <input id="seuil" name="seuil" type="number" min="1" value="{{.Filter.Threshold}}">
  <button type="submit">Filtrer</button>
</form>
<div class="section">
  <div class="section-hdr">Agents avec au plus {{.Filter.Threshold}} enregistrement(s)</div>
  {{if .Summaries}}
  <table>
    <tr><th>Agent</th><th class="num">Durée moyenne (jours)</th><th class="num">Durée médiane (jours)</th><th class="num">Enregistrements</th></tr>
    {{range .Summaries}}
    <tr>
      <td>{{.AgentName}}</td>
      <td class="num">{{fmtDays .MeanDurationDays}}</td>
      <td class="num">{{fmtDays .MedianDurationDays}}</td>
      <td class="num">{{.Total}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p class="dim" style="padding:12px">Aucun agent sous le seuil pour cette période.</p>
  {{end}}
</div>
{{end}}
`

const tmplChat = `
{{define "content"}}
<h1>Chatbot IA</h1>
{{if not .Configured}}<div class="msg info">Aucune clé API n'est configurée : le chatbot est indisponible.</div>{{end}}
<form method="POST" action="/chat">
  <label for="message">Posez une question sur les données :</label>
  <textarea id="message" name="message">{{.Question}}</textarea>
  <button type="submit">Envoyer</button>
</form>
{{if .Error}}<div class="msg err" style="margin-top:12px">{{.Error}}</div>{{end}}
{{if .Reply}}
<div class="section" style="margin-top:12px">
  <div class="section-hdr">Réponse</div>
  <div class="reply">{{.Reply}}</div>
</div>
{{end}}
{{end}}
`
