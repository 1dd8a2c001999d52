package web

import "html/template"

var pages = template.Must(template.New("pages").Parse(`
{{define "index"}}<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Technical Question Analyzer</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
.drop { border: 2px dashed #999; padding: 2rem; text-align: center; }
button { padding: .5rem 1.5rem; }
</style>
</head>
<body>
<h1>&#128248; Technical Question Analyzer</h1>
<p>Upload your technical question images and get structured analysis prompts!</p>
<form class="drop" action="/analyze" method="post" enctype="multipart/form-data">
  <p><input type="file" name="images" accept=".png,.jpg,.jpeg,.webp" multiple required></p>
  <p><label>Engine:
    <select name="engine">
      <option value="gemini">gemini</option>
      <option value="gpt">gpt</option>
    </select>
  </label></p>
  <button type="submit">Analyze</button>
</form>
</body>
</html>{{end}}

{{define "results"}}<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Analysis Results</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
.result { display: flex; gap: 1.5rem; border-bottom: 1px solid #ccc; padding: 1.5rem 0; }
.result img { max-width: 320px; max-height: 420px; object-fit: contain; }
.result textarea { width: 100%; height: 300px; }
.warning { color: #b45309; }
.label { font-size: 1.3rem; font-weight: bold; }
</style>
</head>
<body>
<h1>Analysis Results</h1>
<p>Number of photos uploaded: {{len .Results}}</p>
{{range .Results}}
<div class="result">
  <div>
    {{if .Label}}<div class="label">{{.Label}}</div>{{end}}
    <img src="{{.DataURL}}" alt="{{.Name}}">
    <div>{{.Name}}</div>
  </div>
  <div style="flex:1">
    <h3>LLM Prompt</h3>
    <textarea readonly>{{.Prompt}}</textarea>
    {{range .Warnings}}<p class="warning">&#9888; {{.}}</p>{{end}}
  </div>
</div>
{{end}}
{{range .Warnings}}<p class="warning">&#9888; {{.}}</p>{{end}}
<p><a href="/">Analyze more images</a></p>
</body>
</html>{{end}}
`))
