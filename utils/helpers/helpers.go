package helpers

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/types"
	"go.uber.org/zap/zapcore"
)

// isEmptyPrimitive handles primitive type checks
func isEmptyPrimitive(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0, true
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0, true
	case reflect.Bool:
		return !v.Bool(), true
	}
	return false, false
}

// isEmptyCollection handles collection type checks
func isEmptyCollection(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil() || v.Len() == 0, true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !IsEmpty(v.Index(i).Interface()) {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

// IsEmpty checks if the given interface value represents an empty or zero value.
// Strings made only of whitespace count as empty.
func IsEmpty[T any](value T) bool {
	if v, ok := any(value).(types.EmptyCheck); ok {
		return v.IsEmpty()
	}

	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	}

	if isEmpty, ok := isEmptyPrimitive(v); ok {
		return isEmpty
	}

	if isEmpty, ok := isEmptyCollection(v); ok {
		return isEmpty
	}

	if v.Kind() == reflect.Struct && v.Type() == reflect.TypeOf(time.Time{}) {
		return v.Interface().(time.Time).IsZero()
	}

	return v.IsZero()
}

// FetchErrorStrings returns a slice of strings containing the error messages
func FetchErrorStrings(errs []error) []string {
	errStrings := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			errStrings = append(errStrings, err.Error())
		}
	}
	return errStrings
}

// FetchErrorStack returns a string containing the error messages separated by semicolons
func FetchErrorStack(errs []error) string {
	var s strings.Builder
	for _, err := range errs {
		if err != nil {
			s.WriteString(err.Error())
			s.WriteString("; ")
		}
	}
	return s.String()
}

// FetchHTTPStatusCode returns the HTTP status code associated with the response type
func FetchHTTPStatusCode(response types.ResponseErrorType) int {
	switch response {
	case constant.BadRequest:
		return http.StatusBadRequest
	case constant.NotFound:
		return http.StatusNotFound
	case constant.Unprocessable:
		return http.StatusUnprocessableEntity
	case constant.ServiceUnavailable:
		return http.StatusServiceUnavailable
	case constant.Informational:
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// IsProdEnvironment returns true if Environment is set to "prod" or "production"
func IsProdEnvironment() bool {
	return GetEnvironmentSlug(GetEnvironment()) == "prod"
}

// GetDefaultPort returns the default port if DefaultAppPort is set in environment variables
func GetDefaultPort() string {
	port := os.Getenv(constant.DefaultAppPort)
	switch strings.TrimSpace(port) {
	case "":
		return "8080"
	default:
		return port
	}
}

// GetServiceName returns the service name from the app config or config files
func GetServiceName() string {
	name := viper.GetString(constant.Service)
	if IsEmpty(name) {
		return "undeniable"
	}
	return name
}

// GetEnvironment resolves the run environment from the process environment first, then config.
func GetEnvironment() string {
	if os.Getenv(constant.Environment) != "" {
		return os.Getenv(constant.Environment)
	}

	if os.Getenv(constant.RunMode) != "" {
		return os.Getenv(constant.RunMode)
	}

	return viper.GetString(constant.Environment)
}

func GetEnvironmentSlug(environment string) string {
	switch strings.ToLower(environment) {
	case "dev", "development":
		return "dev"
	case "test", "testing":
		return "test"
	case "staging":
		return "staging"
	case "prod", "production":
		return "prod"
	default:
		return "dev"
	}
}

// GetAvailablePort finds an available port for the given protocol (TCP or UDP).
func GetAvailablePort(protocol types.Protocol, preferredPort string) (string, error) {
	if preferredPort == "0" || preferredPort == "" {
		port, err := findDynamicPort(protocol)
		if err != nil {
			return "0", fmt.Errorf("failed to find an available port: %w", err)
		}
		return strconv.Itoa(port), nil
	}

	if isPortAvailable(protocol, preferredPort) {
		return preferredPort, nil
	}

	preferredPortInt, _ := strconv.Atoi(preferredPort)
	for port := preferredPortInt + 1; port <= 65535; port++ {
		if isPortAvailable(protocol, strconv.Itoa(port)) {
			return strconv.Itoa(port), nil
		}
	}

	return "0", fmt.Errorf("no available ports found")
}

// findDynamicPort finds a free port dynamically for the given protocol.
func findDynamicPort(protocol types.Protocol) (int, error) {
	if protocol != constant.TCP {
		return 0, fmt.Errorf("unsupported protocol: %s", protocol)
	}
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = listener.Close()
	}()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// isPortAvailable checks if a TCP port is available.
func isPortAvailable(protocol types.Protocol, port string) bool {
	if protocol != constant.TCP {
		return false
	}
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}

// **Helper Function: Validate URL**
func ValidateURL(requestURL string) error {
	_, err := url.ParseRequestURI(requestURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	return nil
}

// IsURL checks if the given string is a URL
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// GetIsLogRotationEnabled returns true if log rotation is enabled
func GetIsLogRotationEnabled() bool {
	enableRotation, _ := strconv.ParseBool(os.Getenv(constant.LogRotationEnabled))
	return enableRotation
}

func colorFor(mode types.LogMode) string {
	switch mode {
	case constant.INFO:
		return constant.GreenColor
	case constant.WARN:
		return constant.YellowColor
	case constant.ERROR, constant.FATAL:
		return constant.RedColor
	case constant.DEBUG:
		return constant.BlueColor
	default:
		return constant.ResetColor
	}
}

// Println prints a message with the specified log mode and color
func Println(mode types.LogMode, args ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	fmt.Println(colorFor(mode) + "[" + timestamp + "] [" + mode.String() + "] " + fmt.Sprint(args...) + constant.ResetColor)
	if mode == constant.FATAL {
		os.Exit(1)
	}
}

// Printf prints a formatted message with the specified log mode and color
func Printf(mode types.LogMode, format string, args ...interface{}) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	format = "[" + timestamp + "] [" + mode.String() + "] " + format
	fmt.Printf(colorFor(mode)+format+constant.ResetColor, args...)
	if mode == constant.FATAL {
		os.Exit(1)
	}
}

// TailCallerEncoder keeps the last n path segments of the caller file.
func TailCallerEncoder(n int) zapcore.CallerEncoder {
	if n <= 0 {
		return zapcore.ShortCallerEncoder
	}
	return func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		path := caller.File

		sep := 0
		i := len(path) - 1
		for ; i >= 0; i-- {
			c := path[i]
			if c == '/' || c == '\\' {
				sep++
				if sep == n {
					break
				}
			}
		}
		start := i + 1
		if start < 0 || start > len(path) {
			start = 0
		}
		tail := path[start:]

		if strings.IndexByte(tail, '\\') >= 0 {
			tail = strings.ReplaceAll(tail, "\\", "/")
		}

		var sb strings.Builder
		sb.Grow(len(tail) + 12)
		sb.WriteString(tail)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(caller.Line))

		enc.AppendString(sb.String())
	}
}
