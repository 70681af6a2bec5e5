// Package scaffold holds the deployment decision catalog and the Terraform
// text emission. Each catalog entry is one decision point the wizard puts
// in front of the menu; the generated templates are written as-is and never
// parsed or validated.
package scaffold

import "fmt"

// Choice pairs a display label with the token stored in the plan.
type Choice struct {
	Label string
	Value string
}

// Providers lists the supported cloud providers.
func Providers() []Choice {
	return []Choice{
		{Label: "Amazon Web Services", Value: "aws"},
		{Label: "Google Cloud Platform", Value: "gcp"},
		{Label: "Microsoft Azure", Value: "azure"},
	}
}

// Environments lists the deployment environments.
func Environments() []Choice {
	return []Choice{
		{Label: "Development", Value: "dev"},
		{Label: "Staging", Value: "staging"},
		{Label: "Production", Value: "prod"},
	}
}

// regionCatalog maps a provider to its offered regions.
var regionCatalog = map[string][]Choice{
	"aws": {
		{Label: "US East (N. Virginia)", Value: "us-east-1"},
		{Label: "US West (Oregon)", Value: "us-west-2"},
		{Label: "Europe (Ireland)", Value: "eu-west-1"},
		{Label: "Europe (Frankfurt)", Value: "eu-central-1"},
		{Label: "Asia Pacific (Singapore)", Value: "ap-southeast-1"},
	},
	"gcp": {
		{Label: "Iowa", Value: "us-central1"},
		{Label: "Oregon", Value: "us-west1"},
		{Label: "Belgium", Value: "europe-west1"},
		{Label: "Frankfurt", Value: "europe-west3"},
		{Label: "Singapore", Value: "asia-southeast1"},
	},
	"azure": {
		{Label: "East US", Value: "eastus"},
		{Label: "West US 2", Value: "westus2"},
		{Label: "North Europe", Value: "northeurope"},
		{Label: "West Europe", Value: "westeurope"},
		{Label: "Southeast Asia", Value: "southeastasia"},
	},
}

// Regions lists the offered regions for a provider.
func Regions(provider string) []Choice {
	return regionCatalog[provider]
}

// sizeCatalog maps a provider to its compute size tiers.
var sizeCatalog = map[string][]Choice{
	"aws": {
		{Label: "Small (t3.micro)", Value: "t3.micro"},
		{Label: "Medium (t3.large)", Value: "t3.large"},
		{Label: "Large (m5.xlarge)", Value: "m5.xlarge"},
	},
	"gcp": {
		{Label: "Small (e2-micro)", Value: "e2-micro"},
		{Label: "Medium (e2-standard-2)", Value: "e2-standard-2"},
		{Label: "Large (n2-standard-4)", Value: "n2-standard-4"},
	},
	"azure": {
		{Label: "Small (Standard_B1s)", Value: "Standard_B1s"},
		{Label: "Medium (Standard_D2s_v3)", Value: "Standard_D2s_v3"},
		{Label: "Large (Standard_D4s_v3)", Value: "Standard_D4s_v3"},
	},
}

// InstanceSizes lists the compute size tiers for a provider.
func InstanceSizes(provider string) []Choice {
	return sizeCatalog[provider]
}

// Backends lists the state backends available for a provider. Local state
// is always offered; the remote backend matches the provider's storage.
func Backends(provider string) []Choice {
	local := Choice{Label: "Local state file", Value: "local"}
	switch provider {
	case "aws":
		return []Choice{local, {Label: "S3 bucket", Value: "s3"}}
	case "gcp":
		return []Choice{local, {Label: "Cloud Storage bucket", Value: "gcs"}}
	case "azure":
		return []Choice{local, {Label: "Blob Storage container", Value: "azurerm"}}
	}
	return []Choice{local}
}

// Plan is the full set of answers collected by the wizard.
type Plan struct {
	Project      string
	Provider     string
	Environment  string
	Region       string
	InstanceType string
	Backend      string

	// Profile is the credential profile stored via `terrastrap auth`,
	// empty when none is on file.
	Profile string
}

// Validate checks the plan is complete enough to emit templates.
func (p Plan) Validate() error {
	if p.Project == "" {
		return fmt.Errorf("plan has no project name")
	}
	if len(Regions(p.Provider)) == 0 {
		return fmt.Errorf("unknown provider %q", p.Provider)
	}
	if p.Region == "" || p.InstanceType == "" || p.Environment == "" {
		return fmt.Errorf("plan for %q is incomplete", p.Project)
	}
	return nil
}
