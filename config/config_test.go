package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/htx-audio/backend-probe/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Config", func() {
	var tempDir string

	writeConfig := func(content string) {
		configPath := filepath.Join(tempDir, "config.yaml")
		err := os.WriteFile(configPath, []byte(content), 0644)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())

		err = os.Chdir(tempDir)
		Expect(err).NotTo(HaveOccurred())

		viper.Reset()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with valid config file", func() {
			BeforeEach(func() {
				writeConfig(`
server:
  environment: "dev"

probe:
  timeout: "2s"
  max_attempts: 3
  retry_delay: "1s"

endpoints:
  - name: "backend"
    url: "http://backend:9000/"
  - name: "localhost"
    url: "http://localhost:9000/"

persist:
  key: "BACKEND_URL"
  file: "backend.env"

priority: ["backend", "localhost"]

logging:
  level: "debug"
`)
			})

			It("should load configuration successfully", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).NotTo(BeNil())
			})

			It("should parse probe settings", func() {
				cfg, _ := config.Load()
				Expect(cfg.Probe.Timeout).To(Equal("2s"))
				Expect(cfg.Probe.MaxAttempts).To(Equal(3))
				Expect(cfg.Probe.RetryDelay).To(Equal("1s"))
			})

			It("should parse endpoints in order", func() {
				cfg, _ := config.Load()
				Expect(cfg.Endpoints).To(HaveLen(2))
				Expect(cfg.Endpoints[0].Name).To(Equal("backend"))
				Expect(cfg.Endpoints[1].URL).To(Equal("http://localhost:9000/"))
			})

			It("should parse the persistence target", func() {
				cfg, _ := config.Load()
				Expect(cfg.Persist.Key).To(Equal("BACKEND_URL"))
				Expect(cfg.Persist.File).To(Equal("backend.env"))
			})

			It("should parse the priority list", func() {
				cfg, _ := config.Load()
				Expect(cfg.Priority).To(Equal([]string{"backend", "localhost"}))
			})
		})

		Context("without config file", func() {
			It("should fall back to the historical defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Probe.Timeout).To(Equal("5s"))
				Expect(cfg.Probe.MaxAttempts).To(Equal(5))
				Expect(cfg.Probe.RetryDelay).To(Equal("3s"))
				Expect(cfg.Persist.Key).To(Equal("REACT_APP_BACKEND_URL"))
				Expect(cfg.Persist.File).To(Equal(".env"))
			})

			It("should default to the four docker-compose endpoints", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Endpoints).To(HaveLen(4))

				names := make([]string, 0, len(cfg.Endpoints))
				for _, ep := range cfg.Endpoints {
					names = append(names, ep.Name)
				}
				Expect(names).To(ConsistOf("backend", "htx_backend", "localhost", "0.0.0.0"))
			})

			It("should default the priority order", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Priority).To(Equal([]string{"0.0.0.0", "htx_backend", "backend", "localhost"}))
			})
		})

		Context("with invalid config file", func() {
			It("should reject an unknown environment", func() {
				writeConfig(`
server:
  environment: "production"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject an invalid timeout", func() {
				writeConfig(`
probe:
  timeout: "not-a-duration"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject a non-positive attempt count", func() {
				writeConfig(`
probe:
  max_attempts: 0
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject an endpoint without a name", func() {
				writeConfig(`
endpoints:
  - name: ""
    url: "http://localhost:8000/"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject a non-http endpoint URL", func() {
				writeConfig(`
endpoints:
  - name: "backend"
    url: "ftp://backend:8000/"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject duplicate endpoint names", func() {
				writeConfig(`
endpoints:
  - name: "backend"
    url: "http://backend:8000/"
  - name: "backend"
    url: "http://localhost:8000/"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})

			It("should reject an unknown log level", func() {
				writeConfig(`
logging:
  level: "verbose"
`)
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
