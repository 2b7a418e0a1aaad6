package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"hr-export/internal/concurrency"
	"hr-export/internal/config"
	"hr-export/internal/export"
	"hr-export/internal/providers/lucca"
	"hr-export/internal/sftpclient"
)

// Field lists requested from Lucca. Their order is also the CSV column order.
var (
	employeeFields = []string{
		"firstName",
		"lastName",
		"gender",
		"birthDate",
		"jobTitle",
		"department",
		"dtContractStart",
		"dtContractEnd",
	}
	departmentFields = []string{
		"name",
		"currentUsersCount",
		"hierarchy",
	}
)

func main() {
	var (
		outDir     = flag.String("out-dir", ".", "directory for the generated csv files")
		compress   = flag.Bool("compress", false, "also write brotli-compressed copies (.csv.br)")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated files via SFTP")
	)
	flag.Parse()

	start := time.Now()

	err := run(*outDir, *compress, *uploadSFTP)

	log.Printf("Execution finished in %s", time.Since(start))

	if err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(outDir string, compress, uploadSFTP bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
	defer cancel()

	cfg := config.Load()

	if outDir != "." && outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	lc := lucca.New(cfg.LuccaBaseURL, cfg.LuccaToken)

	// Fixed sequence: employees first, then departments. A failed fetch
	// degrades to an empty file, it does not abort the run.
	employees, err := lc.BuildEmployees(ctx, employeeFields)
	if err != nil {
		return err
	}
	employeesPath := filepath.Join(outDir, "employees.csv")
	if err := export.WriteRecordsCSV(employeesPath, employees, employeeFields); err != nil {
		return err
	}
	log.Printf("wrote %d employees to %s", len(employees), employeesPath)

	departments := lc.BuildDepartments(ctx, departmentFields)
	departmentsPath := filepath.Join(outDir, "departments.csv")
	if err := export.WriteRecordsCSV(departmentsPath, departments, departmentFields); err != nil {
		return err
	}
	log.Printf("wrote %d departments to %s", len(departments), departmentsPath)

	outFiles := []string{employeesPath, departmentsPath}

	if compress {
		for _, p := range []string{employeesPath, departmentsPath} {
			bp, err := export.CompressBrotli(p)
			if err != nil {
				return err
			}
			log.Printf("compressed %s -> %s", p, bp)
			outFiles = append(outFiles, bp)
		}
	}

	if uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer upCancel()

		errs := concurrency.ForEach(upCtx, outFiles, 2, func(ctx context.Context, p string) error {
			return sftpclient.UploadFile(ctx, upCfg, p, filepath.Base(p))
		})
		if len(errs) > 0 {
			return errors.Join(errs...)
		}
		log.Printf("uploaded %d files to sftp://%s:%d%s", len(outFiles), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}

	return nil
}
