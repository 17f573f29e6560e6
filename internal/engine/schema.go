package engine

// schema.go - DDL and insert statements for the two stat tables

const createHittersSQL = `
CREATE TABLE IF NOT EXISTS hitters (
    source_team TEXT,
    id TEXT,
    pos TEXT,
    player TEXT,
    team TEXT,
    eligible TEXT,
    status TEXT,
    age INTEGER,
    opponent TEXT,
    salary INTEGER,
    contract TEXT,
    ab INTEGER,
    h INTEGER,
    r INTEGER,
    hr INTEGER,
    rbi INTEGER,
    sb INTEGER,
    avg DOUBLE,
    gp INTEGER,
    price DOUBLE
)`

const createPitchersSQL = `
CREATE TABLE IF NOT EXISTS pitchers (
    source_team TEXT,
    id TEXT,
    pos TEXT,
    player TEXT,
    team TEXT,
    eligible TEXT,
    status TEXT,
    age INTEGER,
    opponent TEXT,
    salary INTEGER,
    contract TEXT,
    ip DOUBLE,
    w INTEGER,
    sv INTEGER,
    k INTEGER,
    era DOUBLE,
    whip DOUBLE,
    h INTEGER,
    ab INTEGER,
    r INTEGER,
    rbi INTEGER,
    hr INTEGER,
    sb INTEGER,
    avg DOUBLE,
    gp INTEGER,
    price DOUBLE
)`

const insertHitterSQL = `
INSERT INTO hitters VALUES (
    ?,?,?,?,?,?,?,?,?,?,
    ?,?,?,?,?,?,?,?,?,?
)`

const insertPitcherSQL = `
INSERT INTO pitchers VALUES (
    ?,?,?,?,?,?,?,?,?,?,
    ?,?,?,?,?,?,?,?,?,?,
    ?,?,?,?,?,?
)`
