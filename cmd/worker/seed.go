package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/forms"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/repository"
)

// SeedFile is the YAML layout accepted by the seed command.
type SeedFile struct {
	Projects    []forms.ProjectInput    `yaml:"projects"`
	Experiences []forms.ExperienceInput `yaml:"experiences"`
}

type SeedReport struct {
	Projects    int
	Experiences int
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load projects and experiences from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readSeedFile(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			inj := bootstrap.BuildContainer(cfg)
			log := do.MustInvoke[*zap.Logger](inj)
			defer do.MustInvoke[*bootstrap.Closers](inj).CloseAll(log)

			projects, err := do.Invoke[*repository.ProjectRepository](inj)
			if err != nil {
				return err
			}
			experiences, err := do.Invoke[*repository.ExperienceRepository](inj)
			if err != nil {
				return err
			}

			report, err := Seed(cmd.Context(), seed, projects, experiences, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects and %d experiences\n", report.Projects, report.Experiences)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the seed YAML")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readSeedFile(path string) (*SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return decodeSeed(f)
}

func decodeSeed(r io.Reader) (*SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &seed, nil
}

// Seed submits every entry through the same forms the admin UI uses, so
// validation and normalization match. It stops at the first failure.
func Seed(ctx context.Context, seed *SeedFile, projects forms.ProjectRepository, experiences forms.ExperienceRepository, log *zap.Logger) (SeedReport, error) {
	var report SeedReport

	for i, in := range seed.Projects {
		form := forms.NewProjectForm(projects, nil, log)
		form.Set(in)
		if _, err := form.Submit(ctx); err != nil {
			return report, fmt.Errorf("project %d (%q): %w", i, in.Title, err)
		}
		report.Projects++
	}

	for i, in := range seed.Experiences {
		form := forms.NewExperienceForm(experiences, log)
		form.Set(in)
		if _, err := form.Submit(ctx); err != nil {
			return report, fmt.Errorf("experience %d (%q at %q): %w", i, in.Role, in.Company, err)
		}
		report.Experiences++
	}

	return report, nil
}
