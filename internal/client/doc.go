// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console application runtime.
//
// It wires the Setter API adapter, the status event source (polling or the
// local webhook receiver), the session store of the configured account, the
// local journal and the terminal UI into a single process lifecycle.
package client
