package web

import "html/template"

// The single-form page, rendered for both the landing view and results.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>YouTube Video Summarizer</title>
    <style>
        body {
            background-color: #0a0a0a;
            color: #ffffff;
            font-family: Arial, sans-serif;
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
            background: linear-gradient(135deg, #1f1c2c, #928dab);
        }
        h1 {
            font-size: 2em;
            margin-bottom: 20px;
        }
        .container {
            text-align: center;
            width: 60%;
        }
        input[type="text"] {
            width: 80%;
            padding: 10px;
            font-size: 1.1em;
            margin: 20px 0;
            border-radius: 5px;
            border: 1px solid #ccc;
        }
        input[type="submit"] {
            padding: 10px 20px;
            font-size: 1em;
            color: #ffffff;
            background-color: #333;
            border: none;
            border-radius: 5px;
            cursor: pointer;
        }
        input[type="submit"]:hover {
            background-color: #555;
        }
        .result {
            margin-top: 20px;
            font-size: 1.1em;
            color: #ddd;
            background-color: #222;
            padding: 20px;
            border-radius: 8px;
        }
    </style>
</head>
<body>
    <h1>YouTube Video Summarizer</h1>
    <div class="container">
        <form action="/summarize" method="post">
            <input type="text" name="video_url" placeholder="Enter YouTube Video URL" required>
            <br>
            <input type="submit" value="Summarize Video">
        </form>
        {{if .Summary}}
            <div class="result">
                <h2>Summary:</h2>
                <p>{{.Summary}}</p>
            </div>
        {{end}}
    </div>
</body>
</html>
`

func pageTemplate() *template.Template {
	return template.Must(template.New("index").Parse(pageHTML))
}
