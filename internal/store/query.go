package store

// SessionWorkQuery returns the newest work-area sample of every session that
// is still open, newest first. It takes no parameters and only reads.
const SessionWorkQuery = `
WITH latest_session_entries AS (
  SELECT
    psam.owner,
    psam.pid,
    psam.session_id,
    psam.timestamp,
    psam.temp_size,
    ROW_NUMBER() OVER (PARTITION BY psam.session_id ORDER BY psam.timestamp DESC) AS rn
  FROM
    public.process_stats_agg_min psam
  WHERE
    psam.temp_size IS NOT NULL
),
open_sessions AS (
  SELECT
    ls.owner,
    ls.pid,
    ls.session_id,
    ls.timestamp,
    ls.temp_size
  FROM
    latest_session_entries ls
  JOIN
    public.session s ON ls.session_id = s.id
  WHERE
    s.end_time IS NULL
    AND ls.rn = 1
)
SELECT
  owner,
  pid,
  session_id,
  timestamp,
  temp_size
FROM
  open_sessions
ORDER BY
  timestamp DESC;
`
