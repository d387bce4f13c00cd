package server

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>YouTube Video Summarizer</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
    input[type=url] { width: 100%; padding: 0.5rem; }
    .error { color: #b00020; }
    pre.summary { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
  </style>
</head>
<body>
  <h1>YouTube Video Summarizer</h1>
  <p>Enter a YouTube URL and select the language to summarize the video.</p>
  <form method="post" action="/">
    <p><input type="url" name="url" placeholder="https://www.youtube.com/watch?v=..." value="{{.URL}}" required></p>
    <p>
      <label><input type="radio" name="language" value="English" {{if ne .Language "French"}}checked{{end}}> English</label>
      <label><input type="radio" name="language" value="French" {{if eq .Language "French"}}checked{{end}}> French</label>
    </p>
    <p><button type="submit">Summarize</button></p>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Summary}}<pre class="summary">{{.Summary}}</pre>{{end}}
</body>
</html>
`
