package integration

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stacklok/toolhive-endpoint-registry/test-integration/endpoint-registry/helpers"
)

const seededRegistryID = "5f0c6a1e-3b7d-4c2a-9e8f-1a2b3c4d5e6f"

var _ = Describe("Registry lifecycle", Label("registries"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
	)

	BeforeEach(func() {
		tempDir = createTempDir("registries-test-")
		configFile := helpers.WriteConfigYAML(tempDir, `tenant: acme.com
registries:
  - id: `+seededRegistryID+`
    name: default
    displayName: Default
`)
		serverHelper = helpers.NewServerTestHelper(ctx, configFile)
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(10 * time.Second)
	})

	AfterEach(func() {
		Expect(serverHelper.StopServer()).To(Succeed())
		cleanupTempDir(tempDir)
	})

	It("serves the configured registry to the default tenant", func() {
		resp, err := serverHelper.Get("", "/v1/registries/"+seededRegistryID)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var reg helpers.Registry
		helpers.DecodeJSON(resp, &reg)
		Expect(reg.Name).To(Equal("default"))
		Expect(reg.Type).To(Equal("WSO2"))
	})

	It("hides registries from other tenants", func() {
		resp, err := serverHelper.Get("other.com", "/v1/registries/"+seededRegistryID)
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("creates, updates and deletes a registry", func() {
		name := helpers.UniqueName("mesh")
		resp, err := serverHelper.DoJSON("", http.MethodPost, "/v1/registries",
			map[string]string{"name": name, "type": "CONSUL"})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		location := resp.Header.Get("Location")

		var created helpers.Registry
		helpers.DecodeJSON(resp, &created)
		Expect(created.ID).NotTo(BeEmpty())
		Expect(location).To(Equal("/v1/registries/" + created.ID))

		By("rejecting a duplicate name")
		resp, err = serverHelper.DoJSON("", http.MethodPost, "/v1/registries", map[string]string{"name": name})
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))

		By("updating it")
		resp, err = serverHelper.DoJSON("", http.MethodPut, location,
			map[string]string{"name": name, "displayName": "Mesh", "type": "EUREKA"})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		var updated helpers.Registry
		helpers.DecodeJSON(resp, &updated)
		Expect(updated.DisplayName).To(Equal("Mesh"))
		Expect(updated.Type).To(Equal("EUREKA"))

		By("deleting it")
		resp, err = serverHelper.Do("", http.MethodDelete, location, "", nil)
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		resp, err = serverHelper.Get("", location)
		Expect(err).NotTo(HaveOccurred())
		_ = helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("rejects an unknown registry type", func() {
		resp, err := serverHelper.DoJSON("", http.MethodPost, "/v1/registries",
			map[string]string{"name": helpers.UniqueName("zk"), "type": "ZOOKEEPER"})
		Expect(err).NotTo(HaveOccurred())
		var body helpers.ErrorBody
		helpers.DecodeJSON(resp, &body)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body.Error).NotTo(BeEmpty())
	})
})
