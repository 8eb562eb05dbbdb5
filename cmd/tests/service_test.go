package tests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type testConfig struct {
	Endpoint string
}

var cfg = loadConfig()

var client = &http.Client{Timeout: 30 * time.Second}

func loadConfig() testConfig {

	data, err := ioutil.ReadFile("service_test.yml")
	if err != nil {
		log.Fatal(err)
	}

	var c testConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		log.Fatal(err)
	}

	// allow environment variables to override the configuration file
	if len(os.Getenv("TC_ENDPOINT")) != 0 {
		c.Endpoint = os.Getenv("TC_ENDPOINT")
	}

	log.Printf("endpoint [%s]\n", c.Endpoint)

	return c
}

func getJSON(url string, out interface{}) int {

	res, err := client.Get(url)
	if err != nil {
		log.Printf("GET %s failed: %s", url, err.Error())
		return http.StatusInternalServerError
	}

	defer res.Body.Close()

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Printf("GET %s decode failed: %s", url, err.Error())
			return http.StatusInternalServerError
		}
	}

	return res.StatusCode
}

func postJSON(url string, payload interface{}, out interface{}) int {

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	res, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("POST %s failed: %s", url, err.Error())
		return http.StatusInternalServerError
	}

	defer res.Body.Close()

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Printf("POST %s decode failed: %s", url, err.Error())
			return http.StatusInternalServerError
		}
	}

	return res.StatusCode
}

//
// end of file
//
