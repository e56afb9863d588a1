package configs

// HTTP defines configuration for the HTTP server and the upload endpoint.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// UploadDir receives every uploaded file before it is processed.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	// MaxUploadMB bounds the size of a multipart upload.
	MaxUploadMB int64 `env:"MAX_UPLOAD_MB" envDefault:"32"`
}

// MaxUploadBytes converts MaxUploadMB to bytes.
func (c HTTP) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
