package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Cloudinary CloudinaryConfig
	Upload     UploadConfig
	Convert    ConvertConfig
	CORS       CORSConfig
	Janitor    JanitorConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type MongoConfig struct {
	URI      string
	Database string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	// Domain gates the download proxy: only hosts under this suffix are fetched.
	Domain string
	Folder string
}

type UploadConfig struct {
	UploadsDir  string
	MaxFileSize int64 // bytes
	// UseLocalStorage opts development deployments into the on-disk backend
	// when provider credentials are absent. Without it, uploads fail loudly.
	UseLocalStorage bool
}

type ConvertConfig struct {
	TmpDir     string
	MaxPDFSize int64 // bytes
	Timeout    time.Duration
	// Binaries is probed in order; the first one answering --version wins.
	Binaries []string
}

type CORSConfig struct {
	Origins       []string
	PreviewSuffix string
}

type JanitorConfig struct {
	Interval time.Duration
	MaxAge   time.Duration
}

// Load builds the configuration once at startup. Request handlers never read
// the environment; they only see this struct.
func Load() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", ""),
			Database: getEnv("MONGODB_DATABASE", "docpress"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Domain:    getEnv("MEDIA_DOMAIN", "cloudinary.com"),
			Folder:    getEnv("CLOUDINARY_FOLDER", "docpress/docs"),
		},
		Upload: UploadConfig{
			UploadsDir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxFileSize:     getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 30*1024*1024), // 30MB
			UseLocalStorage: getEnvAsBool("USE_LOCAL_STORAGE", false),
		},
		Convert: ConvertConfig{
			TmpDir:     getEnv("CONVERT_TMP_DIR", os.TempDir()),
			MaxPDFSize: getEnvAsInt64("MAX_PDF_BYTES", 12*1024*1024), // 12MB
			Timeout:    getEnvAsDuration("PDF2DOCX_TIMEOUT", 5*time.Minute),
			Binaries:   getEnvAsList("SOFFICE_BINARIES", []string{"/usr/bin/soffice", "soffice", "libreoffice"}),
		},
		CORS: CORSConfig{
			Origins:       getEnvAsList("CORS_ORIGIN", nil),
			PreviewSuffix: getEnv("CORS_PREVIEW_SUFFIX", ".vercel.app"),
		},
		Janitor: JanitorConfig{
			Interval: getEnvAsDuration("JANITOR_INTERVAL", 30*time.Minute),
			MaxAge:   getEnvAsDuration("JANITOR_MAX_AGE", time.Hour),
		},
	}

	if err := os.MkdirAll(cfg.Upload.UploadsDir, 0755); err != nil {
		panic(err)
	}
	if err := os.MkdirAll(cfg.Convert.TmpDir, 0755); err != nil {
		panic(err)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
