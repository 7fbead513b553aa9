package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditscope/creditscope/pkg/profile"
)

// profileOpts collects the financial profile flags shared by the scoring
// commands. A JSON input file, when given, provides the base values and
// explicit flags override it.
type profileOpts struct {
	inputFile       string
	monthlyIncome   float64
	monthlyExpenses float64
	existingDebts   float64
	age             int
	employment      string
	employmentYears float64
	loanAmount      float64
}

func (o *profileOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.inputFile, "input", "", "Path to a JSON profile file")
	cmd.Flags().Float64Var(&o.monthlyIncome, "income", 0, "Monthly net income")
	cmd.Flags().Float64Var(&o.monthlyExpenses, "expenses", 0, "Monthly living expenses")
	cmd.Flags().Float64Var(&o.existingDebts, "debts", 0, "Total existing debt")
	cmd.Flags().IntVar(&o.age, "age", 0, "Applicant age in years")
	cmd.Flags().StringVar(&o.employment, "employment", "permanent", "Employment type: permanent, contract, self-employed, unemployed")
	cmd.Flags().Float64Var(&o.employmentYears, "years", 0, "Years in current employment")
	cmd.Flags().Float64Var(&o.loanAmount, "amount", 0, "Requested loan amount")
}

func (o *profileOpts) resolve(cmd *cobra.Command) (profile.FinancialProfile, error) {
	var p profile.FinancialProfile

	if o.inputFile != "" {
		data, err := os.ReadFile(o.inputFile)
		if err != nil {
			return p, fmt.Errorf("reading profile file: %w", err)
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("parsing profile file: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("income") {
		p.MonthlyIncome = o.monthlyIncome
	}
	if f.Changed("expenses") {
		p.MonthlyExpenses = o.monthlyExpenses
	}
	if f.Changed("debts") {
		p.ExistingDebts = o.existingDebts
	}
	if f.Changed("age") {
		p.Age = o.age
	}
	if f.Changed("employment") || p.EmploymentType == "" {
		p.EmploymentType = profile.EmploymentType(o.employment)
	}
	if f.Changed("years") {
		p.EmploymentYears = o.employmentYears
	}
	if f.Changed("amount") {
		p.RequestedLoanAmount = o.loanAmount
	}

	return p, nil
}
