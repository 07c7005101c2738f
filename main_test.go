// Copyright (C) 2024-Present CloudFoundry.org Foundation, Inc. All rights reserved.
//
// This program and the accompanying materials are made available under
// the terms of the under the Apache License, Version 2.0 (the "License”);
// you may not use this file except in compliance with the License.
//
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the
// License for the specific language governing permissions and limitations
// under the License.

package main_test

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("hostpage", func() {
	var (
		boshRoot,
		documentRoot,
		configPath string

		hostname string
	)

	var writeConfig = func(path, contents string) {
		Expect(os.MkdirAll(filepath.Dir(path), 0700)).To(Succeed())
		Expect(os.WriteFile(path, []byte(contents), 0600)).To(Succeed())
	}

	var writeStackLabel = func(contents string) {
		Expect(os.WriteFile(filepath.Join(documentRoot, "stack.txt"), []byte(contents), 0600)).To(Succeed())
	}

	var run = func(args ...string) *gexec.Session {
		command := exec.Command(hostpagePath, args...)
		command.Env = append(os.Environ(), fmt.Sprintf("HOSTPAGE_BOSH_ROOT=%s", boshRoot))

		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		return session
	}

	BeforeEach(func() {
		var err error
		hostname, err = os.Hostname()
		Expect(err).NotTo(HaveOccurred())

		boshRoot = GinkgoT().TempDir()
		documentRoot = GinkgoT().TempDir()
		configPath = filepath.Join(GinkgoT().TempDir(), "hostpage.yml")

		writeConfig(configPath, fmt.Sprintf("---\nlog_level: debug\nshutdown_timeout: 1s\nstack_label:\n  document_root: %s\n", documentRoot))
	})

	Describe("version", func() {
		It("prints the linked version", func() {
			session := run("version")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(regexp.QuoteMeta(testVersion)))
		})

		It("supports the --version flag", func() {
			session := run("--version")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(regexp.QuoteMeta(testVersion)))
		})
	})

	Describe("render", func() {
		Context("with a stack label", func() {
			BeforeEach(func() {
				writeStackLabel("  production\n")
			})

			It("writes the page with the stack and the hostname", func() {
				session := run("render", "--config", configPath, "--hostname", "web-01")
				Eventually(session).Should(gexec.Exit(0))

				Expect(session.Out).To(gbytes.Say(`<div class="stack-name">Stack: production</div>`))
				Expect(session.Out).To(gbytes.Say(`<div class="hostname">web-01</div>`))
			})

			It("leaves the stack out with --no-stack-label", func() {
				session := run("render", "--config", configPath, "--hostname", "web-01", "--no-stack-label")
				Eventually(session).Should(gexec.Exit(0))

				Expect(string(session.Out.Contents())).NotTo(ContainSubstring(`class="stack-name"`))
				Expect(session.Out).To(gbytes.Say(`<div class="hostname">web-01</div>`))
			})
		})

		It("resolves the real hostname by default", func() {
			session := run("render", "--config", configPath)
			Eventually(session).Should(gexec.Exit(0))

			Expect(session.Out).To(gbytes.Say(regexp.QuoteMeta(fmt.Sprintf(`<div class="hostname">%s</div>`, hostname))))
		})

		It("escapes a hostile stack label", func() {
			writeStackLabel("<script>alert(1)</script>")

			session := run("render", "--config", configPath, "--hostname", "web-01")
			Eventually(session).Should(gexec.Exit(0))

			Expect(session.Out).To(gbytes.Say(regexp.QuoteMeta("&lt;script&gt;alert(1)&lt;/script&gt;")))
			Expect(string(session.Out.Contents())).NotTo(ContainSubstring("<script>"))
		})

		It("uses the configuration rendered into the BOSH job", func() {
			writeConfig(
				filepath.Join(boshRoot, "jobs", "hostpage", "config", "hostpage.yml"),
				fmt.Sprintf("---\ntitle: From BOSH\nstack_label:\n  document_root: %s\n", documentRoot),
			)
			writeStackLabel("bosh-stack")

			session := run("render", "--hostname", "web-01")
			Eventually(session).Should(gexec.Exit(0))

			Expect(session.Out).To(gbytes.Say("<title>From BOSH</title>"))
			Expect(session.Out).To(gbytes.Say("Stack: bosh-stack"))
		})

		Context("when the config is invalid", func() {
			BeforeEach(func() {
				writeConfig(configPath, "---\nhostname:\n  source: carrier-pigeon\n")
			})

			It("fails with a generic exit status", func() {
				session := run("render", "--config", configPath)
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("Error: failed to load config"))
			})
		})
	})

	Describe("serve", func() {
		var session *gexec.Session

		var boundAddress = func() string {
			Eventually(session.Out).Should(gbytes.Say("hostpage.serve.listening"))

			match := regexp.MustCompile(`"bound-address":"([^"]+)"`).FindSubmatch(session.Out.Contents())
			Expect(match).NotTo(BeNil())

			return string(match[1])
		}

		var get = func(address, path string) (*http.Response, string) {
			resp, err := http.Get(fmt.Sprintf("http://%s%s", address, path))
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())

			return resp, string(body)
		}

		BeforeEach(func() {
			writeStackLabel("production\n")
			session = run("serve", "--config", configPath, "--listen", "127.0.0.1:0")
		})

		AfterEach(func() {
			session.Kill()
		})

		It("serves the page on every path", func() {
			address := boundAddress()

			for _, path := range []string{"/", "/index.php", "/anything/else"} {
				resp, body := get(address, path)
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Header.Get("Content-Type")).To(Equal("text/html; charset=utf-8"))
				Expect(body).To(ContainSubstring(`<div class="stack-name">Stack: production</div>`))
				Expect(body).To(ContainSubstring(fmt.Sprintf(`<div class="hostname">%s</div>`, hostname)))
			}
		})

		It("picks up a new stack label without a restart", func() {
			address := boundAddress()

			writeStackLabel("staging")
			_, body := get(address, "/")
			Expect(body).To(ContainSubstring("Stack: staging"))
		})

		It("exits cleanly on SIGTERM", func() {
			boundAddress()

			session.Terminate()
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("hostpage.serve.draining"))
		})
	})
})
