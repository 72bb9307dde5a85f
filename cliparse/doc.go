// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags take priority, then environment variables, then defaults. A .env
file in the working directory is loaded first when present (godotenv), so
development machines can keep their settings out of the shell profile.

# Settings

Required:

  - BACKEND_URL (-b): labeling backend base URL
  - API_TOKEN (-k): backend auth token

Optional:

  - DATABASE_URL (-d): cache database URL or path (default: taskmint.db)
  - DATABASE_TYPE (-t): sqlite, postgres or redis (default: sqlite)
*/
package cliparse
