package db

import (
	"context"
	"fmt"
)

// Tables lists the workoutware tables, in creation order.
var Tables = []string{
	"user_info",
	"exercise",
	"target",
	"exercise_target_association",
	"workout_session",
	"session_exercise",
	"workout_set",
	"personal_record",
	"validation_event",
	"progress",
	"user_stats_log",
	"goal",
}

// EnsureSchema creates the workoutware tables when they do not exist yet.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const Schema = `
CREATE TABLE IF NOT EXISTS user_info
(
    user_id         SERIAL PRIMARY KEY,
    first_name      VARCHAR(100) NOT NULL DEFAULT '',
    last_name       VARCHAR(100) NOT NULL DEFAULT '',
    email           VARCHAR(255) NOT NULL UNIQUE,
    registered      BOOLEAN      NOT NULL DEFAULT TRUE,
    date_registered DATE         NOT NULL DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS exercise
(
    exercise_id   SERIAL PRIMARY KEY,
    name          VARCHAR(100) NOT NULL UNIQUE,
    exercise_type VARCHAR(50)  NOT NULL DEFAULT '',
    subtype       VARCHAR(50)  NOT NULL DEFAULT '',
    equipment     VARCHAR(50)  NOT NULL DEFAULT '',
    difficulty    VARCHAR(20)  NOT NULL DEFAULT '',
    description   TEXT         NOT NULL DEFAULT '',
    demo_link     VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS target
(
    target_id       SERIAL PRIMARY KEY,
    target_name     VARCHAR(100) NOT NULL UNIQUE,
    target_group    VARCHAR(100) NOT NULL DEFAULT '',
    target_function VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS exercise_target_association
(
    exercise_id INTEGER     NOT NULL REFERENCES exercise (exercise_id) ON DELETE CASCADE,
    target_id   INTEGER     NOT NULL REFERENCES target (target_id) ON DELETE CASCADE,
    intensity   VARCHAR(20) NOT NULL DEFAULT '',
    PRIMARY KEY (exercise_id, target_id)
);

CREATE TABLE IF NOT EXISTS workout_session
(
    session_id       SERIAL PRIMARY KEY,
    user_id          INTEGER      NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    session_name     VARCHAR(100) NOT NULL DEFAULT '',
    session_date     DATE         NOT NULL,
    start_time       TIMESTAMPTZ,
    end_time         TIMESTAMPTZ,
    duration_minutes INTEGER,
    bodyweight       NUMERIC(6, 2),
    completed        BOOLEAN      NOT NULL DEFAULT FALSE,
    is_template      BOOLEAN      NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS ix_workout_session_user_date ON workout_session (user_id, session_date);

CREATE TABLE IF NOT EXISTS session_exercise
(
    session_exercise_id SERIAL PRIMARY KEY,
    session_id          INTEGER NOT NULL REFERENCES workout_session (session_id) ON DELETE CASCADE,
    exercise_id         INTEGER NOT NULL REFERENCES exercise (exercise_id),
    exercise_order      INTEGER NOT NULL DEFAULT 0,
    target_sets         INTEGER,
    target_reps         INTEGER,
    completed           BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS ix_session_exercise_session ON session_exercise (session_id);

CREATE TABLE IF NOT EXISTS workout_set
(
    set_id              SERIAL PRIMARY KEY,
    session_exercise_id INTEGER NOT NULL REFERENCES session_exercise (session_exercise_id) ON DELETE CASCADE,
    set_number          INTEGER NOT NULL,
    weight              NUMERIC(6, 2),
    reps                INTEGER NOT NULL,
    rpe                 INTEGER,
    completed           BOOLEAN NOT NULL DEFAULT TRUE,
    is_warmup           BOOLEAN NOT NULL DEFAULT FALSE,
    completion_time     TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS ix_workout_set_session_exercise ON workout_set (session_exercise_id);

CREATE TABLE IF NOT EXISTS personal_record
(
    pr_id         SERIAL PRIMARY KEY,
    user_id       INTEGER       NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    exercise_id   INTEGER       NOT NULL REFERENCES exercise (exercise_id) ON DELETE CASCADE,
    record_type   VARCHAR(30)   NOT NULL,
    current_value NUMERIC(6, 2) NOT NULL,
    reps          INTEGER,
    previous_best NUMERIC(6, 2),
    achieved_date DATE          NOT NULL,
    session_id    INTEGER REFERENCES workout_session (session_id) ON DELETE SET NULL,
    notes         TEXT          NOT NULL DEFAULT '',
    UNIQUE (user_id, exercise_id, record_type)
);

CREATE TABLE IF NOT EXISTS validation_event
(
    validation_id SERIAL PRIMARY KEY,
    user_id       INTEGER       NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    set_id        INTEGER REFERENCES workout_set (set_id) ON DELETE SET NULL,
    exercise_id   INTEGER       NOT NULL REFERENCES exercise (exercise_id) ON DELETE CASCADE,
    input_weight  NUMERIC(6, 2) NOT NULL,
    expected_max  NUMERIC(6, 2),
    flagged_as    VARCHAR(20)   NOT NULL,
    user_action   VARCHAR(50),
    created_at    TIMESTAMPTZ   NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_validation_event_user_created ON validation_event (user_id, created_at);

CREATE TABLE IF NOT EXISTS progress
(
    progress_id   SERIAL PRIMARY KEY,
    user_id       INTEGER        NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    exercise_id   INTEGER        NOT NULL REFERENCES exercise (exercise_id) ON DELETE CASCADE,
    period_type   VARCHAR(20)    NOT NULL,
    period_start  DATE           NOT NULL,
    max_weight    NUMERIC(6, 2)  NOT NULL,
    avg_weight    NUMERIC(6, 2)  NOT NULL,
    total_volume  NUMERIC(12, 2) NOT NULL,
    workout_count INTEGER        NOT NULL,
    UNIQUE (user_id, period_type, exercise_id, period_start)
);

CREATE TABLE IF NOT EXISTS user_stats_log
(
    log_id              SERIAL PRIMARY KEY,
    user_id             INTEGER       NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    log_date            DATE          NOT NULL,
    weight              NUMERIC(5, 2) NOT NULL,
    neck                NUMERIC(5, 2),
    waist               NUMERIC(5, 2),
    hips                NUMERIC(5, 2),
    body_fat_percentage NUMERIC(4, 1),
    notes               TEXT          NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS ix_user_stats_log_user_date ON user_stats_log (user_id, log_date);

CREATE TABLE IF NOT EXISTS goal
(
    goal_id         SERIAL PRIMARY KEY,
    user_id         INTEGER        NOT NULL REFERENCES user_info (user_id) ON DELETE CASCADE,
    goal_type       VARCHAR(50)    NOT NULL,
    description     TEXT           NOT NULL DEFAULT '',
    target_value    NUMERIC(10, 2) NOT NULL,
    current_value   NUMERIC(10, 2) NOT NULL DEFAULT 0,
    unit            VARCHAR(20)    NOT NULL DEFAULT '',
    exercise_id     INTEGER REFERENCES exercise (exercise_id) ON DELETE SET NULL,
    start_date      DATE           NOT NULL,
    target_date     DATE,
    status          VARCHAR(20)    NOT NULL DEFAULT 'active',
    completion_date DATE,
    CHECK (status IN ('active', 'completed', 'abandoned'))
);
`
