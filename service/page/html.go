package page

import "html/template"

// results 区域单独成模板，页面脚本按键入内容拉取它替换
const resultsTemplate = `{{define "results"}}
{{- if eq .Kind "loading"}}<div class="state">{{.Message}}</div>
{{- else if eq .Kind "failed"}}<div class="state" style="color: red">{{.Message}}</div>
{{- else if eq .Kind "results"}}{{range .Cards}}
<div class="crypto-card" data-id="{{.ID}}">
    <img src="{{.ImageURL}}" alt="{{.Name}}" class="crypto-icon">
    <h3>{{.Title}}</h3>
    <p>Current Price: {{.Price}}</p>
    <p>Market Cap: {{.MarketCap}}</p>
</div>{{end}}
{{- else}}<p>{{.Message}}</p>
{{- end}}
{{end}}`

const indexTemplate = `{{define "index"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Crypto Search</title>
    <style>
        .crypto-list-container { max-width: 960px; margin: 20px auto; font-family: sans-serif; }
        .global-search-input { width: 100%; padding: 8px; font-size: 16px; }
        .crypto-cards-wrapper { display: flex; flex-wrap: wrap; gap: 10px; margin-top: 10px; }
        .crypto-card { border: 1px solid #aaa; padding: 10px; width: 200px; cursor: pointer; }
        .crypto-icon { width: 32px; height: 32px; }
    </style>
</head>
<body>
<div class="crypto-list-container">
    {{- if eq .View.Kind "loading" "failed"}}
    <div id="results" data-kind="{{.View.Kind}}">{{template "results" .View}}</div>
    {{- else}}
    <input type="text" id="search" class="global-search-input" placeholder="{{.Placeholder}}" value="{{.View.Query}}" autofocus>
    <div id="results" class="crypto-cards-wrapper" data-kind="{{.View.Kind}}">{{template "results" .View}}</div>
    {{- end}}
</div>
<script>
const input = document.getElementById("search");
const results = document.getElementById("results");

async function refresh() {
    const resp = await fetch("/results?q=" + encodeURIComponent(input.value));
    results.innerHTML = await resp.text();
}

if (input) {
    input.addEventListener("input", refresh);
} else if (results.dataset.kind === "loading") {
    // 数据还在加载时定时刷新整页
    setTimeout(() => location.reload(), 1000);
}

results.addEventListener("click", async (e) => {
    const card = e.target.closest(".crypto-card");
    if (!card) {
        return;
    }
    const resp = await fetch("/api/coins/" + encodeURIComponent(card.dataset.id) + "/select", { method: "POST" });
    const data = await resp.json();
    alert(data.message || data.error);
});
</script>
</body>
</html>
{{end}}`

// Templates 返回页面模板，包含 "index" 和 "results"
func Templates() *template.Template {
	return template.Must(template.New("page").Parse(resultsTemplate + indexTemplate))
}
