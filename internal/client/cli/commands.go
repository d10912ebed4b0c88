package cli

// commands lists the REPL verbs in the order help shows them.
func (a *App) commands() []command {
	return []command{
		{name: "login", usage: "login", summary: "sign in through the browser", run: a.Login},
		{name: "logout", usage: "logout", summary: "sign out", run: a.Logout},
		{name: "register", usage: "register", summary: "create an account", run: a.Register},
		{name: "confirm", usage: "confirm [code] [username]", summary: "confirm a new account", run: a.Confirm},
		{name: "resend", usage: "resend [username]", summary: "send a new confirmation code", run: a.Resend},
		{name: "whoami", usage: "whoami", summary: "show the signed-in user", run: a.Whoami},

		{name: "list", usage: "list", summary: "list your images and albums", protected: true, run: a.List},
		{name: "search", usage: "search <text>", summary: "find images by name or tag", protected: true, run: a.Search},
		{name: "tag", usage: "tag <tag>", summary: "images carrying a tag", minArgs: 1, protected: true, run: a.Tag},
		{name: "albums", usage: "albums", summary: "albums formed by shared tags", protected: true, run: a.Albums},
		{name: "stats", usage: "stats", summary: "library statistics", protected: true, run: a.Stats},
		{name: "tags", usage: "tags", summary: "popular tags", protected: true, run: a.Tags},
		{name: "upload", usage: "upload <path> [name] [tags]", summary: "upload an image", minArgs: 1, protected: true, run: a.Upload},
		{name: "delete", usage: "delete <filename>", summary: "delete an image", minArgs: 1, protected: true, run: a.Delete},
		{name: "mkalbum", usage: "mkalbum <name>", summary: "create a named album", minArgs: 1, protected: true, run: a.MkAlbum},
		{name: "rmalbum", usage: "rmalbum <name>", summary: "delete a named album", minArgs: 1, protected: true, run: a.RmAlbum},
		{name: "move", usage: "move <filename> <album>", summary: "move an image into an album", minArgs: 2, protected: true, run: a.Move},
		{name: "download", usage: "download <filename>", summary: "save an image locally", minArgs: 1, protected: true, run: a.Download},
	}
}
