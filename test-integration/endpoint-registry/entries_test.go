package integration

import (
	"encoding/json"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stacklok/toolhive-endpoint-registry/test-integration/endpoint-registry/helpers"
)

var _ = Describe("Entry lifecycle", Label("entries"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
		definitions  *helpers.DefinitionServer
		entriesPath  string
	)

	BeforeEach(func() {
		tempDir = createTempDir("entries-test-")
		definitions = helpers.NewDefinitionServer(map[string]string{
			"/petstore.yaml": helpers.PetstoreYAML,
			"/weather.wsdl":  helpers.WeatherWSDL,
			"/broken.yaml":   "openapi: [",
		})

		configFile := helpers.WriteConfigYAML(tempDir, `registries:
  - id: `+seededRegistryID+`
    name: default
fetch:
  timeout: 5s
`)
		serverHelper = helpers.NewServerTestHelper(ctx, configFile)
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(10 * time.Second)

		entriesPath = "/v1/registries/" + seededRegistryID + "/entries"
	})

	AfterEach(func() {
		Expect(serverHelper.StopServer()).To(Succeed())
		definitions.Close()
		cleanupTempDir(tempDir)
	})

	createEntry := func(meta helpers.EntryRequest, fileName string, content []byte) helpers.Entry {
		resp, err := serverHelper.DoMultipart("", http.MethodPost, entriesPath, meta, fileName, content)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusCreated), string(helpers.ReadBodyIfFailed(resp)))
		var entry helpers.Entry
		helpers.DecodeJSON(resp, &entry)
		return entry
	}

	Context("inline definitions", func() {
		It("stores an OpenAPI YAML document as JSON", func() {
			entry := createEntry(helpers.EntryRequest{
				Name:           "pets",
				Version:        "1.0.0",
				ServiceType:    "REST",
				ServiceURL:     "https://pets.example.com",
				DefinitionType: "OAS",
			}, "petstore.yaml", []byte(helpers.PetstoreYAML))
			Expect(entry.ID).NotTo(BeEmpty())
			Expect(entry.DefinitionType).To(Equal("OAS"))

			resp, err := serverHelper.Get("", entriesPath+"/"+entry.ID+"/definition-file")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("application/json"))

			var doc map[string]any
			Expect(json.Unmarshal(helpers.ReadBody(resp), &doc)).To(Succeed())
			Expect(doc).To(HaveKeyWithValue("openapi", "3.0.3"))
		})

		It("serves a WSDL document as XML", func() {
			entry := createEntry(helpers.EntryRequest{
				Name:           "weather",
				Version:        "2.0",
				ServiceType:    "SOAP_1_1",
				DefinitionType: "WSDL1",
			}, "weather.wsdl", []byte(helpers.WeatherWSDL))

			resp, err := serverHelper.Get("", entriesPath+"/"+entry.ID+"/definition-file")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("text/xml"))
			Expect(string(helpers.ReadBody(resp))).To(ContainSubstring("WeatherService"))
		})

		It("accepts a GraphQL schema", func() {
			entry := createEntry(helpers.EntryRequest{
				Name:           "pets-graph",
				Version:        "1",
				ServiceType:    "GQL",
				DefinitionType: "GQL_SDL",
			}, "schema.graphql", []byte(helpers.PetsSDL))
			Expect(entry.DefinitionType).To(Equal("GQL_SDL"))
		})

		It("rejects a definition that does not match its declared type", func() {
			resp, err := serverHelper.DoMultipart("", http.MethodPost, entriesPath, helpers.EntryRequest{
				Name:           "mismatch",
				Version:        "1.0.0",
				DefinitionType: "WSDL1",
			}, "petstore.yaml", []byte(helpers.PetstoreYAML))
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects a duplicate name and version", func() {
			meta := helpers.EntryRequest{Name: "dup", Version: "1.0.0", DefinitionType: "OAS"}
			createEntry(meta, "petstore.json", []byte(helpers.PetstoreJSON))

			resp, err := serverHelper.DoMultipart("", http.MethodPost, entriesPath, meta,
				"petstore.json", []byte(helpers.PetstoreJSON))
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusConflict))
		})
	})

	Context("definitions referenced by URL", func() {
		It("fetches and validates the document", func() {
			resp, err := serverHelper.DoJSON("", http.MethodPost, entriesPath, helpers.EntryRequest{
				Name:           "remote-pets",
				Version:        "1.0.0",
				DefinitionType: "OAS",
				DefinitionURL:  definitions.URL + "/petstore.yaml",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var entry helpers.Entry
			helpers.DecodeJSON(resp, &entry)
			Expect(entry.DefinitionURL).To(Equal(definitions.URL + "/petstore.yaml"))
			Expect(definitions.Hits()).To(Equal(1))
		})

		It("reports an unreachable document as a bad gateway", func() {
			resp, err := serverHelper.DoJSON("", http.MethodPost, entriesPath, helpers.EntryRequest{
				Name:           "missing",
				Version:        "1.0.0",
				DefinitionType: "OAS",
				DefinitionURL:  definitions.URL + "/missing.yaml",
			})
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
		})

		It("rejects a document that cannot be parsed", func() {
			resp, err := serverHelper.DoJSON("", http.MethodPost, entriesPath, helpers.EntryRequest{
				Name:           "broken",
				Version:        "1.0.0",
				DefinitionType: "OAS",
				DefinitionURL:  definitions.URL + "/broken.yaml",
			})
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("versions", func() {
		It("clones an entry under a new version and lists the lineage", func() {
			original := createEntry(helpers.EntryRequest{
				Name:           "orders",
				Version:        "1.0.0",
				ServiceType:    "REST",
				DefinitionType: "OAS",
			}, "petstore.yaml", []byte(helpers.PetstoreYAML))

			resp, err := serverHelper.Do("", http.MethodPost,
				entriesPath+"/"+original.ID+"/new-version?version=1.1.0", "", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			Expect(resp.Header.Get("Location")).NotTo(BeEmpty())

			var clone helpers.Entry
			helpers.DecodeJSON(resp, &clone)
			Expect(clone.ID).NotTo(Equal(original.ID))
			Expect(clone.Name).To(Equal("orders"))
			Expect(clone.Version).To(Equal("1.1.0"))
			Expect(clone.SourceEntryID).To(Equal(original.ID))

			By("serving the cloned definition")
			resp, err = serverHelper.Get("", entriesPath+"/"+clone.ID+"/definition-file")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			_ = helpers.ReadBody(resp)

			By("rejecting an existing version")
			resp, err = serverHelper.Do("", http.MethodPost,
				entriesPath+"/"+original.ID+"/new-version?version=1.1.0", "", nil)
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusConflict))

			By("listing every version, newest first")
			resp, err = serverHelper.Get("", entriesPath+"/"+original.ID+"/versions")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			var versions helpers.EntryVersions
			helpers.DecodeJSON(resp, &versions)
			Expect(versions.Count).To(Equal(2))
			Expect(versions.Versions[0].Version).To(Equal("1.1.0"))
			Expect(versions.Versions[0].Latest).To(BeTrue())
			Expect(versions.Versions[1].Version).To(Equal("1.0.0"))
			Expect(versions.Versions[1].Latest).To(BeFalse())
		})

		It("requires the version parameter", func() {
			original := createEntry(helpers.EntryRequest{
				Name: "no-version", Version: "1.0.0", DefinitionType: "OAS",
			}, "petstore.json", []byte(helpers.PetstoreJSON))

			resp, err := serverHelper.Do("", http.MethodPost, entriesPath+"/"+original.ID+"/new-version", "", nil)
			Expect(err).NotTo(HaveOccurred())
			_ = helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	It("updates metadata and keeps the definition when none is supplied", func() {
		entry := createEntry(helpers.EntryRequest{
			Name: "billing", Version: "1.0.0", DefinitionType: "OAS",
		}, "petstore.yaml", []byte(helpers.PetstoreYAML))

		resp, err := serverHelper.DoMultipart("", http.MethodPut, entriesPath+"/"+entry.ID, helpers.EntryRequest{
			Name:            "billing",
			Version:         "1.0.0",
			DisplayName:     "Billing",
			ServiceCategory: "EDGE",
		}, "", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		var updated helpers.Entry
		helpers.DecodeJSON(resp, &updated)
		Expect(updated.DisplayName).To(Equal("Billing"))
		Expect(updated.ServiceCategory).To(Equal("EDGE"))

		resp, err = serverHelper.Get("", entriesPath+"/"+entry.ID+"/definition-file")
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("deletes an entry", func() {
		entry := createEntry(helpers.EntryRequest{
			Name: "gone", Version: "1.0.0", DefinitionType: "OAS",
		}, "petstore.json", []byte(helpers.PetstoreJSON))

		resp, err := serverHelper.Do("", http.MethodDelete, entriesPath+"/"+entry.ID, "", nil)
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		resp, err = serverHelper.Get("", entriesPath+"/"+entry.ID)
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})
})
