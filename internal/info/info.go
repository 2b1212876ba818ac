// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION of current release
const VERSION = "v0.1.0"
