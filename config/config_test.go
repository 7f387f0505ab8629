package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: storefront
http:
  port: 8080
secretKey:
  access: a
  refresh: r
platform:
  feePercentage: 7.5
paystack:
  secretKey: ""
  subaccountCode: ACCT_x
auth:
  superAdminEmails:
    - owner@bakery.test
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_YAMLAndEnvOverrides(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("PAYSTACK_SECRETKEY", "sk_test_env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Paystack)
	assert.Equal(t, "sk_test_env", cfg.Paystack.SecretKey)
	assert.Equal(t, "ACCT_x", cfg.Paystack.SubaccountCode)
	require.NotNil(t, cfg.Platform)
	assert.True(t, decimal.RequireFromString("7.5").Equal(cfg.Platform.FeePercentage))
	assert.True(t, cfg.Auth.IsSuperAdminEmail("OWNER@bakery.test"))
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.True(t, decimal.NewFromInt(5).Equal(cfg.Platform.FeePercentage))
	assert.True(t, decimal.NewFromInt(50000).Equal(cfg.Platform.RegularCustomerThreshold))
	assert.Equal(t, "NGN", cfg.Platform.Currency)
	assert.Equal(t, defaultPaystackBaseURL, cfg.Paystack.BaseURL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.NotNil(t, cfg.Cron)
	assert.NotNil(t, cfg.Email)
	assert.NotNil(t, cfg.Redis)
}

func TestIsSuperAdminEmail_NilConfig(t *testing.T) {
	var auth *AuthConfig
	assert.False(t, auth.IsSuperAdminEmail("owner@bakery.test"))
}

func TestDecimalHookFunc(t *testing.T) {
	hook := decimalHookFunc()
	target := decimalTypeForTest()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "12.50", want: "12.5"},
		{name: "blank string", in: " ", want: "0"},
		{name: "int", in: 5, want: "5"},
		{name: "float", in: 2.25, want: "2.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := hook(nil, target, tt.in)
			require.NoError(t, err)
			d, ok := out.(decimal.Decimal)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.String())
		})
	}

	_, err := hook(nil, target, "abc")
	assert.Error(t, err)
}

func decimalTypeForTest() reflect.Type {
	return reflect.TypeOf(decimal.Decimal{})
}
