package store

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// dockerfileFS embeds the default dockerfile template.
//
//go:embed templates/dockerfile.tmpl
var dockerfileFS embed.FS

// DockerfileParams parameterize the generated dockerfile.
type DockerfileParams struct {
	// Repository is an optional registry prefix for the base image
	// (e.g., "myregistry.example.com/"). Empty means Docker Hub.
	Repository string

	// PythonVersion selects the python base image tag
	PythonVersion string

	// Username is the non-root user created inside the image
	Username string
}

// RenderDockerfile produces the dockerfile contents for an environment.
// The output, together with requirements.txt, is the portable description
// of the environment and may be edited by hand before a rebuild.
func RenderDockerfile(params DockerfileParams) ([]byte, error) {
	tmpl, err := template.ParseFS(dockerfileFS, "templates/dockerfile.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse dockerfile template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("render dockerfile: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
