package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RenderMain produces the main.tf content for a plan.
func RenderMain(p Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — %s environment\n", p.Project, p.Environment)
	b.WriteString("# Generated by terrastrap.\n\n")

	b.WriteString("terraform {\n")
	b.WriteString("  required_version = \">= 1.5\"\n")
	writeBackend(&b, p)
	b.WriteString("}\n\n")

	switch p.Provider {
	case "aws":
		writeAWS(&b, p)
	case "gcp":
		writeGCP(&b, p)
	case "azure":
		writeAzure(&b, p)
	}

	return b.String()
}

func writeBackend(b *strings.Builder, p Plan) {
	switch p.Backend {
	case "s3":
		fmt.Fprintf(b, "  backend \"s3\" {\n")
		fmt.Fprintf(b, "    bucket = %q\n", p.Project+"-tfstate")
		fmt.Fprintf(b, "    key    = %q\n", p.Environment+"/terraform.tfstate")
		fmt.Fprintf(b, "    region = %q\n", p.Region)
		fmt.Fprintf(b, "  }\n")
	case "gcs":
		fmt.Fprintf(b, "  backend \"gcs\" {\n")
		fmt.Fprintf(b, "    bucket = %q\n", p.Project+"-tfstate")
		fmt.Fprintf(b, "    prefix = %q\n", p.Environment)
		fmt.Fprintf(b, "  }\n")
	case "azurerm":
		fmt.Fprintf(b, "  backend \"azurerm\" {\n")
		fmt.Fprintf(b, "    storage_account_name = %q\n", strings.ReplaceAll(p.Project, "-", "")+"tfstate")
		fmt.Fprintf(b, "    container_name       = \"tfstate\"\n")
		fmt.Fprintf(b, "    key                  = %q\n", p.Environment+".terraform.tfstate")
		fmt.Fprintf(b, "  }\n")
	}
}

func writeAWS(b *strings.Builder, p Plan) {
	b.WriteString("provider \"aws\" {\n")
	b.WriteString("  region = var.region\n")
	if p.Profile != "" {
		fmt.Fprintf(b, "  profile = %q\n", p.Profile)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "resource \"aws_instance\" \"%s\" {\n", resourceName(p))
	b.WriteString("  ami           = var.ami_id\n")
	b.WriteString("  instance_type = var.instance_type\n\n")
	b.WriteString("  tags = {\n")
	fmt.Fprintf(b, "    Name        = %q\n", p.Project)
	fmt.Fprintf(b, "    Environment = %q\n", p.Environment)
	b.WriteString("  }\n")
	b.WriteString("}\n")
}

func writeGCP(b *strings.Builder, p Plan) {
	b.WriteString("provider \"google\" {\n")
	b.WriteString("  project = var.project_id\n")
	b.WriteString("  region  = var.region\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "resource \"google_compute_instance\" \"%s\" {\n", resourceName(p))
	fmt.Fprintf(b, "  name         = %q\n", p.Project+"-"+p.Environment)
	b.WriteString("  machine_type = var.instance_type\n")
	fmt.Fprintf(b, "  zone         = %q\n", p.Region+"-a")
	b.WriteString("\n  boot_disk {\n")
	b.WriteString("    initialize_params {\n")
	b.WriteString("      image = var.boot_image\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n\n")
	b.WriteString("  network_interface {\n")
	b.WriteString("    network = \"default\"\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
}

func writeAzure(b *strings.Builder, p Plan) {
	b.WriteString("provider \"azurerm\" {\n")
	b.WriteString("  features {}\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "resource \"azurerm_resource_group\" \"%s\" {\n", resourceName(p))
	fmt.Fprintf(b, "  name     = %q\n", p.Project+"-"+p.Environment+"-rg")
	b.WriteString("  location = var.region\n")
	b.WriteString("}\n")
}

// RenderVariables produces the variables.tf content for a plan. Collected
// answers become defaults so the template applies without extra input.
func RenderVariables(p Plan) string {
	var b strings.Builder

	writeVariable(&b, "region", "Deployment region", p.Region)
	writeVariable(&b, "instance_type", "Compute size for the main instance", p.InstanceType)

	switch p.Provider {
	case "aws":
		writeVariable(&b, "ami_id", "Machine image for the instance", "")
	case "gcp":
		writeVariable(&b, "project_id", "Google Cloud project", "")
		writeVariable(&b, "boot_image", "Boot disk image", "debian-cloud/debian-12")
	}

	return b.String()
}

func writeVariable(b *strings.Builder, name, description, def string) {
	fmt.Fprintf(b, "variable %q {\n", name)
	b.WriteString("  type        = string\n")
	fmt.Fprintf(b, "  description = %q\n", description)
	if def != "" {
		fmt.Fprintf(b, "  default     = %q\n", def)
	}
	b.WriteString("}\n\n")
}

// resourceName derives a Terraform-safe identifier from the project name.
func resourceName(p Plan) string {
	name := strings.ToLower(p.Project)
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, name)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "app_" + name
	}
	return name
}

// Write emits main.tf and variables.tf under dir, creating it if needed.
// Returns the paths written.
func Write(dir string, p Plan) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	files := map[string]string{
		"main.tf":      RenderMain(p),
		"variables.tf": RenderVariables(p),
	}
	var written []string
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
