package Storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore keeps attachments on local disk and hands out time-limited signed
// links. Only the storage-relative path is ever persisted; urls are derived on
// demand and verified on download.
type FileStore struct {
	Dir     string
	BaseURL string
	secret  []byte
	ttl     time.Duration
}

var store *FileStore

// Setup initializes the package-level store from the environment.
func Setup() {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "./Uploads"
	}
	secret := os.Getenv("FILE_URL_SECRET")
	if secret == "" {
		secret = os.Getenv("API_SECRET")
	}
	store = &FileStore{
		Dir:     dir,
		BaseURL: os.Getenv("FILE_BASE_URL"),
		secret:  []byte(secret),
		ttl:     24 * time.Hour,
	}
}

// UseStore swaps the package store, used by tests.
func UseStore(s *FileStore) {
	store = s
}

func NewFileStore(dir, baseURL, secret string, ttl time.Duration) *FileStore {
	return &FileStore{Dir: dir, BaseURL: baseURL, secret: []byte(secret), ttl: ttl}
}

// Save writes the upload under folder with a uuid-prefixed name and returns
// the storage-relative path.
func (s *FileStore) Save(folder, originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(originalName))
	relative := filepath.ToSlash(filepath.Join(folder, name))

	target := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", err
	}

	out, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return relative, nil
}

func (s *FileStore) Remove(path string) error {
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return err
	}
	return os.Remove(full)
}

// FullPath maps a storage-relative path to the on-disk location.
func (s *FileStore) FullPath(path string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(path))
}

// SignedURL derives a time-limited download link for a stored path.
func (s *FileStore) SignedURL(path string) string {
	expires := time.Now().Add(s.ttl).Unix()
	return fmt.Sprintf("%s/api/files/%s?expires=%d&sig=%s",
		s.BaseURL, path, expires, s.sign(path, expires))
}

// Verify checks a download signature and its expiry.
func (s *FileStore) Verify(path string, expires int64, sig string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	return hmac.Equal([]byte(s.sign(path, expires)), []byte(sig))
}

func (s *FileStore) sign(path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", path, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// PathFromURL reverses SignedURL: it strips the scheme, host, route prefix and
// query from a full link, leaving the storage-relative path. Values that are
// already plain paths pass through unchanged.
func PathFromURL(raw string) string {
	if !strings.Contains(raw, "?") && !strings.Contains(raw, "://") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	path := strings.TrimPrefix(parsed.Path, "/")
	if rest, ok := strings.CutPrefix(path, "api/files/"); ok {
		return rest
	}
	// A relative value with a query string is already a storage path
	if !parsed.IsAbs() {
		return path
	}
	// Foreign object-store link: /bucket/folder/file -> folder/file
	if parts := strings.SplitN(path, "/", 2); len(parts) == 2 {
		return parts[1]
	}
	return path
}

// SignedURL resolves a path through the package store; before Setup it returns
// the path untouched so read paths stay usable in tests.
func SignedURL(path string) string {
	if store == nil || path == "" {
		return path
	}
	return store.SignedURL(path)
}

func Default() *FileStore {
	return store
}

// ParseExpiry reads the expires query parameter of a signed link.
func ParseExpiry(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
