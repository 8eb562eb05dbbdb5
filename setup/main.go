package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

// generates a setup_env.sh that exports the service configuration as the
// CISERVICE_JSON_* environment variables the service loads at startup

func main() {
	type cfgData struct {
		File   string
		EnvVar string
	}

	var cfgBase string
	var port string
	flag.StringVar(&cfgBase, "dir", "", "local directory containing the config json files")
	flag.StringVar(&port, "port", "8080", "port to run the service on")
	flag.Parse()

	if cfgBase == "" {
		log.Fatal("dir is required")
	}

	log.Printf("Generate service config from %s", cfgBase)
	cfgFiles := []cfgData{
		{File: "service.json", EnvVar: "CISERVICE_JSON_01"},
		{File: "tag_buckets.json", EnvVar: "CISERVICE_JSON_02"},
		{File: "field_aliases.json", EnvVar: "CISERVICE_JSON_03"},
	}

	out := make([]string, 0)
	for _, cf := range cfgFiles {
		tgtFile := path.Join(cfgBase, cf.File)
		jsonBytes, err := os.ReadFile(tgtFile)
		if err != nil {
			log.Fatal(err.Error())
		}

		// service.json carries the default port; override it here
		if cf.EnvVar == "CISERVICE_JSON_01" {
			updated := strings.Replace(string(jsonBytes), "8080", port, 1)
			jsonBytes = []byte(updated)
		}

		// fail here rather than at service startup
		var probe map[string]interface{}
		if err := json.Unmarshal(jsonBytes, &probe); err != nil {
			log.Fatalf("%s: %s", tgtFile, err.Error())
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, jsonBytes); err != nil {
			log.Fatal(err.Error())
		}

		out = append(out, fmt.Sprintf("export %s='%s'", cf.EnvVar, compact.String()))
	}

	outF, err := os.Create("setup_env.sh")
	if err != nil {
		log.Fatal(err.Error())
	}
	outF.WriteString("#!/bin/bash\n\n")
	outF.WriteString(strings.Join(out, "\n"))
	outF.WriteString("\n")
	outF.Close()
	os.Chmod("setup_env.sh", 0777)
}
