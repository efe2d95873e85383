package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. WEALTHCALC_LOGGING_LEVEL
const EnvPrefix = "WEALTHCALC"

// LoggingSettings holds logging configuration options
type LoggingSettings struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// OutputSettings holds output format configuration options
type OutputSettings struct {
	Format string `mapstructure:"format"` // json, console, csv, schedule-csv
}

// Settings is the application configuration. Rates start from
// domain.DefaultRates and any rates.<key> entry overrides one of them.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Output  OutputSettings  `mapstructure:"output"`
	Rates   domain.Rates    `mapstructure:"-"`
}

// LoadSettings reads settings from path, or from wealthcalc.{yaml,json,toml}
// in the working directory or $HOME/.config/wealthcalc when path is empty.
// A missing default file is not an error; environment variables override
// both.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wealthcalc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wealthcalc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.Rates = rateOverrides(v, domain.DefaultRates())
	return &s, nil
}

// rateOverrides applies every rates.<key> set in v on top of base
func rateOverrides(v *viper.Viper, base domain.Rates) domain.Rates {
	fields := map[string]*decimal.Decimal{
		"ppf_rate":                  &base.PPFRate,
		"ppf_max_deposit":           &base.PPFMaxDeposit,
		"epf_rate":                  &base.EPFRate,
		"epf_employee_share":        &base.EPFEmployeeShare,
		"epf_employer_share":        &base.EPFEmployerShare,
		"cess_rate":                 &base.CessRate,
		"standard_deduction_new":    &base.StandardDeductionNew,
		"standard_deduction_old":    &base.StandardDeductionOld,
		"salary_standard_deduction": &base.SalaryStandardDeduction,
		"professional_tax":          &base.ProfessionalTax,
		"equity_ltcg_exemption":     &base.EquityLTCGExemption,
		"equity_ltcg_rate":          &base.EquityLTCGRate,
		"equity_stcg_rate":          &base.EquitySTCGRate,
		"other_ltcg_rate":           &base.OtherLTCGRate,
		"slab_proxy_rate":           &base.SlabProxyRate,
	}
	for key, field := range fields {
		full := "rates." + key
		if v.IsSet(full) {
			*field = decimal.NewFromFloat(v.GetFloat64(full))
		}
	}
	return base
}
