package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/follows-webhook/pkg/models"
	"github.com/vertex-lab/follows-webhook/pkg/solver"
	"github.com/vertex-lab/follows-webhook/pkg/utils/logger"
	"github.com/vertex-lab/follows-webhook/pkg/webhook"
)

const defaultEnvFile string = ".env"

type SystemConfig struct {
	Log          *logger.Aggregate
	LogWriter    io.Writer
	Debug        bool
	RedisAddress string // archiving is disabled when empty
}

// RegistrationConfig holds who is registering to the generate-webhook endpoint.
type RegistrationConfig struct {
	Name  string
	RegNo string
	Email string
}

// The configuration parameters for the system and the webhook workflow.
type Config struct {
	SystemConfig
	Registration RegistrationConfig
	Client       webhook.ClientConfig
}

func NewSystemConfig() SystemConfig {
	return SystemConfig{
		LogWriter: os.Stdout,
	}
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		SystemConfig: NewSystemConfig(),
		Client:       webhook.NewClientConfig(),
	}
}

// Registration() returns the body to send to the generate-webhook endpoint.
func (c RegistrationConfig) Registration() models.Registration {
	return models.Registration{
		Name:  c.Name,
		RegNo: c.RegNo,
		Email: c.Email,
	}
}

func (c SystemConfig) Print() {
	fmt.Println("System:")
	fmt.Printf("  LogWriter: %T\n", c.LogWriter)
	fmt.Printf("  Debug: %t\n", c.Debug)
	fmt.Printf("  RedisAddress: %s\n", c.RedisAddress)
}

func (c RegistrationConfig) Print() {
	fmt.Println("Registration:")
	fmt.Printf("  Name: %s\n", c.Name)
	fmt.Printf("  RegNo: %s\n", c.RegNo)
	fmt.Printf("  Email: %s\n", c.Email)
}

func (c *Config) Print() {
	c.SystemConfig.Print()
	c.Registration.Print()
	c.Client.Print()
}

// Validate() returns an error if the workflow can't run with this config.
func (c *Config) Validate() error {
	if err := c.Client.Validate(); err != nil {
		return err
	}

	if _, err := solver.IsOddRegistration(c.Registration.RegNo); err != nil {
		return err
	}

	if c.Registration.Name == "" {
		return fmt.Errorf("registration name is empty")
	}

	if c.Registration.Email == "" {
		return fmt.Errorf("registration email is empty")
	}

	return nil
}

// Environ() returns the variables of the .env file (ENV_FILE if set), overridden
// by the variables of the environment. A missing .env file is not an error.
func Environ() (map[string]string, error) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading %q: %w", path, err)
		}
		vars = make(map[string]string)
	}

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		if len(keyVal) == 2 {
			vars[keyVal[0]] = keyVal[1]
		}
	}

	return vars, nil
}

// LoadConfig() read the variables from the .env file and the enviroment, and parses them into a config struct.
func LoadConfig() (*Config, error) {
	vars, err := Environ()
	if err != nil {
		return nil, err
	}
	return ParseConfig(vars)
}

// ParseConfig() parses the variables into a config struct. Unknown variables are ignored.
func ParseConfig(vars map[string]string) (*Config, error) {
	var config = NewConfig()
	var err error

	for key, val := range vars {
		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stdout
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

		case "DEBUG":
			config.Debug, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v=%v: %v", key, val, err)
			}

		case "REDIS_ADDRESS":
			config.RedisAddress = val

		case "GENERATE_WEBHOOK_URL":
			config.Client.GenerateURL = val

		case "REG_NAME":
			config.Registration.Name = val

		case "REG_NO":
			config.Registration.RegNo = val

		case "REG_EMAIL":
			config.Registration.Email = val

		case "HTTP_TIMEOUT":
			timeout, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v=%v: %v", key, val, err)
			}
			config.Client.Timeout = time.Duration(timeout) * time.Second

		case "RETRY_MAX":
			config.Client.RetryMax, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v=%v: %v", key, val, err)
			}

		case "RETRY_WAIT":
			wait, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v=%v: %v", key, val, err)
			}
			config.Client.RetryWaitMin = time.Duration(wait) * time.Second
			config.Client.RetryWaitMax = config.Client.RetryWaitMin
		}
	}

	config.Log = logger.New(config.LogWriter)
	config.Log.SetDebug(config.Debug)
	config.Client.Log = config.Log
	return config, nil
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout {
		file.Close()
	}
}
