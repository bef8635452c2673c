package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2025_03_01_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists fio_transactions
(
    source_account_id   varchar(64)  not null,
    external_id         varchar(64)  not null,
    import_batch_id     varchar(64)  not null,
    date                date         not null,
    amount              decimal      not null,
    currency            varchar(3)   not null,
    counter_account     text,
    counter_account_name text,
    bank_code           text,
    bank_name           text,
    constant_symbol     text,
    variable_symbol     text,
    specific_symbol     text,
    user_identification text,
    message             text,
    type                text,
    comment             text,
    executed_by         text,
    specification       text,
    bic                 text,
    instruction_id      text,
    imported_at         timestamp    not null,
    constraint fio_transactions_pk
        primary key (source_account_id, external_id)
);
`).Error
			},
		},
		{
			ID: "2025_03_01_ImportBatches",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists fio_import_batches
(
    id                varchar(64) not null
        constraint fio_import_batches_pk
            primary key,
    account_id        varchar(64) not null,
    start_date        date        not null,
    end_date          date        not null,
    status            varchar(32) not null,
    transaction_count integer     not null default 0,
    duplicate_count   integer     not null default 0,
    error_message     text,
    start_time        timestamp   not null,
    end_time          timestamp,
    created_at        timestamp   not null,
    updated_at        timestamp   not null
);

create index if not exists fio_import_batches_account_created_idx
    on fio_import_batches (account_id, created_at desc);
`).Error
			},
		},
		{
			ID: "2025_03_01_ProcessingStates",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists fio_processing_states
(
    source_account_id    varchar(64) not null,
    external_id          varchar(64) not null,
    status               varchar(32) not null,
    is_duplicate         boolean     not null default false,
    suggested_payee_name text,
    override_payee_name  text,
    suggested_category   jsonb,
    override_category    jsonb,
    suggested_memo       text,
    override_memo        text,
    category_confidence  double precision,
    payee_confidence     double precision,
    ynab_transaction_id  text,
    ynab_account_id      text,
    processed_at         timestamp,
    submitted_at         timestamp,
    created_at           timestamp   not null,
    updated_at           timestamp   not null,
    constraint fio_processing_states_pk
        primary key (source_account_id, external_id)
);
`).Error
			},
		},
		{
			ID: "2025_03_01_Credentials",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists fio_credentials
(
    account_id       varchar(64) not null
        constraint fio_credentials_pk
            primary key,
    encrypted_token  text        not null,
    last_sync_at     timestamp,
    last_sync_marker date,
    created_at       timestamp   not null,
    updated_at       timestamp   not null
);
`).Error
			},
		},
	}
}
