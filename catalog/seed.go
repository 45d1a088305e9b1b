package catalog

// builtinSnippets is the seed catalog. IDs are stable slugs so the frontend
// can reference them across restarts.
func builtinSnippets() []Snippet {
	return []Snippet{
		{
			ID:          "console-log",
			Name:        "Console Log",
			Description: "Log a message to the browser console",
			Category:    CategoryUtilities,
			Code:        "console.log('%message%');",
			Params:      []string{"message"},
		},
		{
			ID:          "query-selector",
			Name:        "Query Selector",
			Description: "Select a DOM element and store it in a variable",
			Category:    CategoryDOM,
			Code:        "const %varName% = document.querySelector('%selector%');",
			Params:      []string{"varName", "selector"},
		},
		{
			ID:          "set-text",
			Name:        "Set Element Text",
			Description: "Replace the text content of a DOM element",
			Category:    CategoryDOM,
			Code:        "document.querySelector('%selector%').textContent = '%text%';",
			Params:      []string{"selector", "text"},
		},
		{
			ID:          "click-listener",
			Name:        "Click Listener",
			Description: "Run a handler when an element is clicked",
			Category:    CategoryEvents,
			Code: "document.querySelector('%selector%').addEventListener('click', (event) => {\n" +
				"  %handlerBody%\n" +
				"});",
			Params: []string{"selector", "handlerBody"},
		},
		{
			ID:          "dom-ready",
			Name:        "DOM Ready",
			Description: "Run code once the document has finished parsing",
			Category:    CategoryEvents,
			Code: "document.addEventListener('DOMContentLoaded', () => {\n" +
				"  %body%\n" +
				"});",
			Params: []string{"body"},
		},
		{
			ID:          "fetch-json",
			Name:        "Fetch JSON",
			Description: "GET a URL and parse the JSON response",
			Category:    CategoryNetwork,
			Code: "fetch('%url%')\n" +
				"  .then((res) => res.json())\n" +
				"  .then((data) => {\n" +
				"    %onData%\n" +
				"  });",
			Params: []string{"url", "onData"},
		},
		{
			ID:          "local-storage-set",
			Name:        "Local Storage Set",
			Description: "Persist a value under a key in localStorage",
			Category:    CategoryStorage,
			Code:        "localStorage.setItem('%key%', '%value%');",
			Params:      []string{"key", "value"},
		},
		{
			ID:          "local-storage-get",
			Name:        "Local Storage Get",
			Description: "Read a value from localStorage into a variable",
			Category:    CategoryStorage,
			Code:        "const %varName% = localStorage.getItem('%key%');",
			Params:      []string{"varName", "key"},
		},
		{
			ID:          "interval-timer",
			Name:        "Interval Timer",
			Description: "Run code repeatedly on a fixed interval",
			Category:    CategoryUtilities,
			Code: "setInterval(() => {\n" +
				"  %body%\n" +
				"}, %delayMs%);",
			Params: []string{"body", "delayMs"},
		},
		{
			ID:          "debounce",
			Name:        "Debounce Helper",
			Description: "Wrap a function so rapid calls collapse into one",
			Category:    CategoryUtilities,
			Code: "function debounce(fn, wait) {\n" +
				"  let timer;\n" +
				"  return (...args) => {\n" +
				"    clearTimeout(timer);\n" +
				"    timer = setTimeout(() => fn(...args), wait);\n" +
				"  };\n" +
				"}",
			Params: []string{},
		},
	}
}
