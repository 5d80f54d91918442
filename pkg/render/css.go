package render

// Stylesheet is the embedded dark-theme CSS for standalone pages. It
// covers base typography plus every surfdoc-* block class the HTML
// renderer emits.
const Stylesheet = `
:root {
    --bg: #0a0a0f;
    --bg-card: #12121a;
    --bg-hover: #1a1a26;
    --border: #2a2a3a;
    --border-subtle: #1e1e2e;
    --text: #e8e8f0;
    --text-dim: #8888a0;
    --text-muted: #5a5a72;
    --accent: #3b82f6;
    --font-body: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen, sans-serif;
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
body { background: var(--bg); color: var(--text); font-family: var(--font-body); -webkit-font-smoothing: antialiased; }

.surfdoc { max-width: 48rem; margin: 0 auto; padding: 2rem 1.5rem 4rem; line-height: 1.7; }
.surfdoc h1, .surfdoc h2, .surfdoc h3 { margin: 1.5rem 0 0.75rem; line-height: 1.3; }
.surfdoc p { margin: 0.75rem 0; }
.surfdoc a { color: var(--accent); }

.surfdoc-callout { border-left: 3px solid var(--accent); background: var(--bg-card); padding: 0.75rem 1rem; border-radius: 0 6px 6px 0; margin: 1rem 0; }
.surfdoc-callout-warning { border-color: #eab308; }
.surfdoc-callout-danger { border-color: #ef4444; }
.surfdoc-callout-tip, .surfdoc-callout-success { border-color: #22c55e; }
.surfdoc-callout-note { border-color: #06b6d4; }

.surfdoc-data, .surfdoc-pricing { width: 100%; border-collapse: collapse; margin: 1rem 0; font-size: 0.9rem; }
.surfdoc-data th, .surfdoc-pricing th { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border); color: var(--text-dim); }
.surfdoc-data td, .surfdoc-pricing td { padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border-subtle); }

.surfdoc-code { background: var(--bg-card); border: 1px solid var(--border-subtle); border-radius: 8px; padding: 1rem; overflow-x: auto; margin: 1rem 0; font-size: 0.85rem; }

.surfdoc-tasks { list-style: none; margin: 1rem 0; }
.surfdoc-tasks .assignee { color: var(--text-dim); font-size: 0.85rem; }

.surfdoc-decision { background: var(--bg-card); border-radius: 8px; padding: 1rem; margin: 1rem 0; }
.surfdoc-decision .status { text-transform: uppercase; font-size: 0.7rem; font-weight: 700; letter-spacing: 0.05em; padding: 0.15rem 0.5rem; border-radius: 4px; background: var(--bg-hover); margin-right: 0.5rem; }
.surfdoc-decision-accepted .status { color: #22c55e; }
.surfdoc-decision-rejected .status { color: #ef4444; }
.surfdoc-decision-proposed .status { color: #eab308; }
.surfdoc-decision .date { color: var(--text-muted); font-size: 0.8rem; }

.surfdoc-metric { display: inline-flex; align-items: baseline; gap: 0.5rem; background: var(--bg-card); border-radius: 8px; padding: 0.75rem 1rem; margin: 0.5rem 0.5rem 0.5rem 0; }
.surfdoc-metric .label { color: var(--text-dim); font-size: 0.8rem; }
.surfdoc-metric .value { font-size: 1.4rem; font-weight: 700; }
.surfdoc-metric .unit { color: var(--text-muted); }
.surfdoc-metric .trend.up { color: #22c55e; }
.surfdoc-metric .trend.down { color: #ef4444; }
.surfdoc-metric .trend.flat { color: var(--text-muted); }

.surfdoc-summary { border-left: 3px solid var(--accent); padding: 0.5rem 1rem; font-style: italic; color: var(--text-dim); margin: 1rem 0; }

.surfdoc-figure { margin: 1.5rem 0; }
.surfdoc-figure img { max-width: 100%; border-radius: 8px; }
.surfdoc-figure figcaption { color: var(--text-muted); font-size: 0.85rem; margin-top: 0.5rem; text-align: center; }

.surfdoc-tabs { margin: 1rem 0; }
.surfdoc-tabs [role="tablist"] { display: flex; gap: 0.25rem; border-bottom: 1px solid var(--border); }
.surfdoc-tabs .tab-btn { background: none; border: none; color: var(--text-dim); padding: 0.5rem 1rem; cursor: pointer; }
.surfdoc-tabs .tab-btn.active { color: var(--accent); border-bottom: 2px solid var(--accent); }
.surfdoc-tabs .tab-panel { padding: 1rem 0; }

.surfdoc-columns { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fit, minmax(14rem, 1fr)); margin: 1rem 0; }

.surfdoc-quote blockquote, .surfdoc-testimonial blockquote { border-left: 3px solid var(--border); padding-left: 1rem; font-style: italic; color: var(--text-dim); }
.surfdoc-quote .attribution, .surfdoc-testimonial .author { margin-top: 0.5rem; color: var(--text-muted); font-size: 0.85rem; }

.surfdoc-cta { display: inline-block; padding: 0.6rem 1.25rem; border-radius: 8px; text-decoration: none; font-weight: 600; margin: 0.5rem 0.5rem 0.5rem 0; }
.surfdoc-cta-primary { background: var(--accent); color: #fff; }
.surfdoc-cta-secondary { border: 1px solid var(--border); color: var(--text); }

.surfdoc-hero-image img { width: 100%; border-radius: 12px; margin: 1rem 0; }

.surfdoc-faq details { border-bottom: 1px solid var(--border-subtle); padding: 0.75rem 0; }
.surfdoc-faq summary { cursor: pointer; font-weight: 600; }
.surfdoc-faq .faq-answer { padding: 0.5rem 0 0.25rem; color: var(--text-dim); }

.surfdoc-page { margin: 2rem 0; }
.surfdoc-unknown { background: var(--bg-card); border: 1px dashed var(--border); border-radius: 8px; padding: 0.75rem 1rem; color: var(--text-muted); white-space: pre-wrap; }
`

// SiteStylesheet adds site-level navigation and footer rules used by the
// multi-page assembler.
const SiteStylesheet = `
.surfdoc-site-nav { display: flex; align-items: center; gap: 1.5rem; padding: 0.75rem 1.5rem; background: var(--bg-card); border-bottom: 1px solid var(--border-subtle); position: sticky; top: 0; z-index: 100; }
.surfdoc-site-nav .site-name { font-weight: 700; color: #fff; font-size: 1rem; text-decoration: none; margin-right: auto; }
.surfdoc-site-nav a { color: var(--text-dim); text-decoration: none; font-size: 0.875rem; padding: 0.25rem 0.5rem; border-radius: 4px; }
.surfdoc-site-nav a:hover { color: var(--text); background: var(--bg-hover); }
.surfdoc-site-nav a.active { color: var(--accent); font-weight: 600; }

.surfdoc-site-footer { margin-top: 4rem; padding: 1.5rem; border-top: 1px solid var(--border-subtle); text-align: center; color: var(--text-muted); font-size: 0.8rem; }
`
