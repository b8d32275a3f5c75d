package server

import "html/template"

// Page titles.
const (
	DemoQATitle   = "DEMOQA"
	InternetTitle = "The Internet"
)

// pages is the shared layout. Each view clones it and adds its own "body".
var pages = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; margin: 0; padding: 20px; }
        #content { max-width: 900px; margin: 0 auto; }
        .flash { padding: 10px; margin-bottom: 10px; background: #5da423; color: #fff; }
        .flash.error { background: #c60f13; }
    </style>
</head>
<body>
<div id="content">
{{template "body" .}}
</div>
</body>
</html>`))

var views = map[string]*template.Template{}

func init() {
	for name, body := range map[string]string{
		"index":         indexBody,
		"login":         loginBody,
		"drag_and_drop": dragAndDropBody,
		"checkboxes":    checkboxesBody,
		"dropdown":      dropdownBody,
		"floating_menu": floatingMenuBody,
		"hovers":        hoversBody,
		"redirector":    redirectorBody,
		"status_codes":  statusCodesBody,
		"upload":        uploadBody,
	} {
		t := template.Must(pages.Clone())
		template.Must(t.New("body").Parse(body))
		views[name] = t
	}
}

// view is the data passed to every page.
type view struct {
	Title    string
	User     string
	Error    string
	Uploaded string
}

const indexBody = `<h1>Available Examples</h1>
<ul>
    <li><a href="/demoqa/login">Login</a></li>
    <li><a href="/drag_and_drop">Drag and Drop</a></li>
    <li><a href="/checkboxes">Checkboxes</a></li>
    <li><a href="/dropdown">Dropdown</a></li>
    <li><a href="/floating_menu">Floating Menu</a></li>
    <li><a href="/hovers">Hovers</a></li>
    <li><a href="/redirector">Redirect Link</a></li>
    <li><a href="/upload">File Upload</a></li>
</ul>`

const loginBody = `<h1>Login</h1>
{{if .User}}
<div id="books-wrapper">
    <label>User Name : </label><label id="userName-value">{{.User}}</label>
    <button id="submit" type="button">Log out</button>
</div>
{{else}}
<form id="userForm" method="post" action="/demoqa/login">
    <h5>Login in Book Store</h5>
    {{if .Error}}<p id="name" class="mb-1">{{.Error}}</p>{{end}}
    <label for="userName">UserName :</label>
    <input id="userName" name="userName" type="text" placeholder="UserName" autocomplete="off">
    <label for="password">Password :</label>
    <input id="password" name="password" type="password" placeholder="Password" autocomplete="off">
    <div style="height: 600px"></div>
    <button id="login" type="submit">Login</button>
    <button id="newUser" type="button">New User</button>
</form>
{{end}}
<div id="fixedban" style="position: fixed; bottom: 0; left: 0; right: 0; height: 90px; background: #eee; z-index: 10">
    <span id="close-fixedban" style="cursor: pointer" onclick="document.getElementById('fixedban').remove()">x</span>
    Advertisement
</div>`

// The columns swap on plain mouse events so CDP-driven drags work as well as
// real ones.
const dragAndDropBody = `<h3>Drag and Drop</h3>
<style>
    .column { width: 200px; height: 150px; float: left; border: 2px solid #666; margin-right: 5px; text-align: center; cursor: move; user-select: none; }
    .column header { color: #fff; background: #666; padding: 5px; }
</style>
<div id="columns">
    <div class="column" id="column-a" draggable="true"><header>A</header></div>
    <div class="column" id="column-b" draggable="true"><header>B</header></div>
</div>
<script>
    (function () {
        var source = null;
        function column(el) { return el && el.closest ? el.closest('.column') : null; }
        function swap(a, b) {
            var ha = a.querySelector('header'), hb = b.querySelector('header');
            var t = ha.textContent; ha.textContent = hb.textContent; hb.textContent = t;
        }
        document.addEventListener('mousedown', function (e) { source = column(e.target); });
        document.addEventListener('mouseup', function (e) {
            var target = column(e.target);
            if (source && target && source !== target) { swap(source, target); }
            source = null;
        });
        document.addEventListener('dragstart', function (e) { e.preventDefault(); });
    })();
</script>`

const checkboxesBody = `<div class="example">
    <h3>Checkboxes</h3>
    <form id="checkboxes">
        <input type="checkbox"> checkbox 1<br>
        <input type="checkbox" checked> checkbox 2
    </form>
</div>`

const dropdownBody = `<div class="example">
    <h3>Dropdown List</h3>
    <select id="dropdown">
        <option value="" disabled selected>Please select an option</option>
        <option value="1">Option 1</option>
        <option value="2">Option 2</option>
    </select>
</div>`

const floatingMenuBody = `<style>
    #menu { position: fixed; top: 0; left: 0; right: 0; background: #fff; }
    #menu ul { list-style: none; margin: 0; padding: 10px; }
    #menu li { display: inline; margin-right: 15px; }
</style>
<div id="menu">
    <ul>
        <li><a href="#home">Home</a></li>
        <li><a href="#news">News</a></li>
        <li><a href="#contact">Contact</a></li>
        <li><a href="#about">About</a></li>
    </ul>
</div>
<div class="example" style="padding-top: 50px">
    <h3>Floating Menu</h3>
    <div class="scroll" style="height: 4000px">Scroll down to see the menu stay in place.</div>
</div>`

const hoversBody = `<style>
    .figure { display: inline-block; margin: 10px; }
    .figure img { width: 160px; height: 160px; display: block; }
    .figcaption { display: none; }
    .figure:hover .figcaption { display: block; }
</style>
<div class="example">
    <h3>Hovers</h3>
    <div class="figure">
        <img src="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='160' height='160'%3E%3Crect width='160' height='160' fill='%23999'/%3E%3C/svg%3E" alt="User Avatar">
        <div class="figcaption"><h5>name: user1</h5><a href="/users/1">View profile</a></div>
    </div>
    <div class="figure">
        <img src="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='160' height='160'%3E%3Crect width='160' height='160' fill='%23999'/%3E%3C/svg%3E" alt="User Avatar">
        <div class="figcaption"><h5>name: user2</h5><a href="/users/2">View profile</a></div>
    </div>
    <div class="figure">
        <img src="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='160' height='160'%3E%3Crect width='160' height='160' fill='%23999'/%3E%3C/svg%3E" alt="User Avatar">
        <div class="figcaption"><h5>name: user3</h5><a href="/users/3">View profile</a></div>
    </div>
</div>`

const redirectorBody = `<div class="example">
    <h3>Redirection</h3>
    <p>This page contains a link that redirects. Click <a id="redirect" href="/redirect">here</a> to trigger a redirect.</p>
</div>`

const statusCodesBody = `<div class="example">
    <h3>Status Codes</h3>
    <ul>
        <li><a href="/status_codes/200">200</a></li>
        <li><a href="/status_codes/301">301</a></li>
        <li><a href="/status_codes/404">404</a></li>
        <li><a href="/status_codes/500">500</a></li>
    </ul>
</div>`

const uploadBody = `<div class="example">
{{if .Uploaded}}
    <h3>File Uploaded!</h3>
    <div id="uploaded-files" class="panel text-center">
        {{.Uploaded}}
    </div>
{{else}}
    {{if .Error}}<div id="flash" class="flash error">{{.Error}}</div>{{end}}
    <h3>File Uploader</h3>
    <form method="post" action="/upload" enctype="multipart/form-data">
        <input id="file-upload" type="file" name="file">
        <input id="file-submit" class="button" type="submit" value="Upload">
    </form>
{{end}}
</div>`
