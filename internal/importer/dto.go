package importer

// ImportForm holds the text fields sent along with the uploaded file.
type ImportForm struct {
	Affiliate string `form:"affiliate" binding:"max=200"`
	Source    string `form:"source" binding:"max=200"`
}
