package Controllers

import (
	"net/http"

	"HealingRays/Storage"

	"github.com/gin-gonic/gin"
)

// UploadAttachments stores the uploaded files and returns their paths plus
// freshly signed urls. Only the path is meant to be persisted by the caller.
func UploadAttachments(c *gin.Context) {
	if _, ok := practitionerID(c); !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to parse form"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to retrieve files from form data"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "general"
	}

	type uploaded struct {
		Path string `json:"path"`
		URL  string `json:"url"`
	}
	var results []uploaded

	files := form.File["files"]
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open the file"})
			return
		}

		path, err := Storage.Default().Save(folder, file.Filename, src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save the file"})
			return
		}
		results = append(results, uploaded{Path: path, URL: Storage.SignedURL(path)})
	}

	c.JSON(http.StatusOK, results)
}

// ResolveFileURL turns a stored path into a time-limited signed link.
func ResolveFileURL(c *gin.Context) {
	if _, ok := practitionerID(c); !ok {
		return
	}

	path := c.Param("path")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": Storage.SignedURL(path)})
}

func DeleteAttachmentFile(c *gin.Context) {
	if _, ok := practitionerID(c); !ok {
		return
	}

	var input struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Storage.Default().Remove(Storage.PathFromURL(input.Path)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// ServeFile checks the link signature and streams the file. The route is
// public; possession of an unexpired signed link is the authorization.
func ServeFile(c *gin.Context) {
	path := c.Param("path")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}

	expires, err := Storage.ParseExpiry(c.Query("expires"))
	if err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}
	if !Storage.Default().Verify(path, expires, c.Query("sig")) {
		c.String(http.StatusUnauthorized, "Link expired or invalid")
		return
	}

	c.File(Storage.Default().FullPath(path))
}
