package webapi

import "html/template"

// pageTemplate is the complete rates document: current quotes with
// spread-adjusted buy and sell prices, controls to adjust the spread and
// grow the basket, and a legend expanding each currency abbreviation.
var pageTemplate = template.Must(template.New("rates").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Currency Exchange Rates</title>
<style>
  body {background-color: #222; color: #ccc; font-family: monospace; text-align: center;}
  h1 {color: #fff;}
  h2 {color: #aaa; font-size: 1em;}
  pre {font-size: 1.1em; line-height: 1.6;}
  span.up {color: #4caf50;}
  span.down {color: #f44336;}
  span.flat {color: #fff;}
  div.error {color: #f44336; font-size: 1.2em; margin: 2em;}
  form {margin: 1.5em;}
  select {font-family: monospace;}
  button {margin-top: 1em;}
  ul {list-style: none; padding: 0; font-size: 0.9em; color: #888;}
</style>
<script>
  'use strict';
  function getURIbase() {
    return window.location.protocol + '//' + window.location.host + window.location.pathname;
  }
  function resetDefaults() {
    window.location.assign(getURIbase());
  }
  function changeSpread(value) {
    window.location.assign(getURIbase() + '?currencies={{.Basket}}&spread=' + value);
  }
  function addCurrency(code) {
    if (code === '') { return; }
    window.location.assign(getURIbase() + '?currencies={{.Basket}},' + code + '&spread={{.Spread}}');
  }
</script>
</head>
<body>
<h1>Currency Exchange Rates</h1>
<h2>As of {{.AsOf}}</h2>
{{if .Error}}
<div class="error">{{.Error}}</div>
{{else}}
<pre>
{{- range .Rows}}
{{- if .Unavailable}}
{{.Currency}}/USD: unavailable
{{- else if .Change}}
{{.Quote}}  <span class="{{.Class}}" title="{{.SinceTitle}}">{{.Change}}</span>
{{- else}}
{{.Quote}}
{{- end}}
{{- end}}
</pre>
<form>
  <label for="spread">Spread: {{.Spread}}%</label><br>
  <input type="range" id="spread" name="spread" min="0.10" max="2.00" step=".05"
         value="{{.Spread}}" onchange="changeSpread(this.value)">
</form>
<form>
  <label for="currency">Track another currency:</label>
  <select id="currency" name="currency" onchange="addCurrency(this.value)">
    <option value="">--</option>
    {{- range .Options}}
    <option value="{{.Code}}">{{.Code}} - {{.Description}}</option>
    {{- end}}
  </select>
</form>
<button type="button" onclick="resetDefaults()">Reset to defaults</button>
<ul>
  {{- range .Legend}}
  <li>{{.Code}} = {{.Description}}</li>
  {{- end}}
</ul>
{{end}}
</body>
</html>
`))
