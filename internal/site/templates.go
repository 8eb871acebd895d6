package site

// pageTemplate is the Go html/template for every page of the site.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.CSSHref}}">
</head>
<body>
  <div class="background" id="background"{{if .Background}} style="background-image: url('{{.Background}}')"{{end}}></div>
  <header class="masthead">
    <a class="site-title" href="/">{{.SiteTitle}}</a>
    <nav class="site-nav">
      {{range .Nav}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>{{end}}
    </nav>
  </header>
  <main class="content">
    <article class="page-content">
      {{if .Published}}<p class="published">{{.Published}}</p>{{end}}
      {{.Content}}
    </article>
  </main>
{{if .Live}}  <script>
    (function () {
      var el = document.getElementById('background');
      if (!el) return;
      var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(proto + location.host + '/ws/background');
      ws.onmessage = function (ev) {
        var st = JSON.parse(ev.data);
        el.classList.toggle('in-transition', st.in_transition);
        if (st.image) {
          el.style.backgroundImage = "url('{{.AssetBase}}" + st.image + "')";
        }
      };
    })();
  </script>
{{end}}</body>
</html>`

// cssContent is the full stylesheet for the site.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #14161a;
  --panel: rgba(20, 22, 26, 0.88);
  --text: #e6e8eb;
  --text-muted: #9aa1a9;
  --border: #2a2e34;
  --accent: #6ab0f3;
  --accent-hover: #8cc4f8;
  --code-bg: #1d2025;
  --content-max-width: 760px;
  --fade: 600ms;
}

* { box-sizing: border-box; }

html, body {
  margin: 0;
  padding: 0;
  background: var(--bg);
  color: var(--text);
  font: 17px/1.65 Georgia, 'Times New Roman', serif;
}

/* ============ Background ============ */
.background {
  position: fixed;
  inset: 0;
  z-index: -1;
  background-size: cover;
  background-position: center;
  opacity: 0.35;
  transition: opacity var(--fade) ease, background-image var(--fade) ease;
}

.background.in-transition {
  opacity: 0.1;
}

/* ============ Header ============ */
.masthead {
  display: flex;
  align-items: baseline;
  gap: 1.5rem;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1.5rem 1rem 0;
}

.site-title {
  font-size: 1.3rem;
  font-weight: bold;
  color: var(--text);
  text-decoration: none;
}

.site-nav {
  display: flex;
  gap: 1rem;
  font-family: Helvetica, Arial, sans-serif;
  font-size: 0.85rem;
}

.site-nav a {
  color: var(--text-muted);
  text-decoration: none;
}

.site-nav a:hover { color: var(--accent-hover); }
.site-nav a.active { color: var(--accent); }

/* ============ Content ============ */
.content {
  max-width: var(--content-max-width);
  margin: 1.5rem auto 4rem;
  padding: 0 1rem;
}

.page-content {
  background: var(--panel);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 2rem 2.25rem;
}

.page-content h1 {
  margin-top: 0;
  font-size: 1.8rem;
  line-height: 1.25;
}

.page-content a { color: var(--accent); }
.page-content a:hover { color: var(--accent-hover); }

.published {
  margin: 0 0 -0.5rem;
  color: var(--text-muted);
  font-family: Helvetica, Arial, sans-serif;
  font-size: 0.8rem;
}

/* ============ Code ============ */
.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 4px;
  padding: 0.9rem 1rem;
  overflow-x: auto;
  font-size: 0.8em;
  line-height: 1.5;
}

.page-content code {
  font-family: 'SF Mono', Menlo, Consolas, monospace;
}

.page-content p code,
.page-content li code {
  background: var(--code-bg);
  border-radius: 3px;
  padding: 0.1em 0.35em;
  font-size: 0.85em;
}

/* ============ Tables ============ */
.page-content table {
  border-collapse: collapse;
  width: 100%;
  font-size: 0.9em;
}

.page-content th,
.page-content td {
  border: 1px solid var(--border);
  padding: 0.4rem 0.7rem;
  text-align: left;
}

@media (max-width: 600px) {
  .masthead { flex-direction: column; gap: 0.5rem; }
  .page-content { padding: 1.25rem 1rem; }
}
`
