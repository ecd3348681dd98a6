package config

import (
	"fmt"
	"os"

	"github.com/finsim/finance-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a simulation configuration.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationConfig, error) {
	var cfg domain.SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ValidateConfiguration checks that a kind is selected, that the matching
// parameter block is present and valid, and that no stray blocks for other
// simulators are mixed in.
func (ip *InputParser) ValidateConfiguration(cfg *domain.SimulationConfig) error {
	if cfg.Simulation == "" {
		return fmt.Errorf("no simulation kind selected")
	}

	blocks := map[domain.SimulationKind]bool{
		domain.KindCompoundInterest: cfg.Compound != nil,
		domain.KindDividends:        cfg.Dividends != nil,
		domain.KindAmortization:     cfg.Loan != nil,
		domain.KindRentVsBuy:        cfg.RentVsBuy != nil,
		domain.KindDebtPayoff:       cfg.DebtPayoff != nil,
		domain.KindFire:             cfg.Fire != nil,
		domain.KindRoi:              cfg.Roi != nil,
	}

	present, known := blocks[cfg.Simulation]
	if !known {
		return fmt.Errorf("unknown simulation kind %q", cfg.Simulation)
	}
	if !present {
		return fmt.Errorf("simulation %q selected but its parameter block is missing", cfg.Simulation)
	}
	for kind, has := range blocks {
		if has && kind != cfg.Simulation {
			return fmt.Errorf("parameter block %q does not match selected simulation %q", kind, cfg.Simulation)
		}
	}

	return ip.validateParams(cfg)
}

func (ip *InputParser) validateParams(cfg *domain.SimulationConfig) error {
	switch cfg.Simulation {
	case domain.KindCompoundInterest:
		return cfg.Compound.Validate()
	case domain.KindDividends:
		return cfg.Dividends.Validate()
	case domain.KindAmortization:
		return cfg.Loan.Validate()
	case domain.KindRentVsBuy:
		return cfg.RentVsBuy.Validate()
	case domain.KindDebtPayoff:
		return cfg.DebtPayoff.Validate()
	case domain.KindFire:
		return cfg.Fire.Validate()
	case domain.KindRoi:
		return cfg.Roi.Validate()
	}
	return nil
}
